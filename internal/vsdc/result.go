package vsdc

import "time"

// VSDC result codes.
const (
	ResultSuccess      = "000"
	ResultUnauthorized = "401"
	ResultParamError   = "910"
	ResultNotFound     = "995"
	ResultServerError  = "999"

	MsgSucceeded    = "It is succeeded"
	MsgParamError   = "Request parameter error"
	MsgUnknownError = "Unknown server error"
)

const resultDateLayout = "20060102150405"

// ResultDate formats t as yyyyMMddHHmmss in UTC.
func ResultDate(t time.Time) string {
	return t.UTC().Format(resultDateLayout)
}

// Envelope is the VSDC response shape. Data is always written, null included.
type Envelope struct {
	ResultCd  string `json:"resultCd"`
	ResultMsg string `json:"resultMsg"`
	ResultDt  string `json:"resultDt,omitempty"`
	Data      any    `json:"data"`
}

// ErrorEnvelope is the failure response shape.
type ErrorEnvelope struct {
	ResultCd  string `json:"resultCd"`
	ResultMsg string `json:"resultMsg"`
	Error     any    `json:"error,omitempty"`
}

// Succeeded wraps data in a success envelope stamped with now.
func Succeeded(data any, now time.Time) Envelope {
	return Envelope{
		ResultCd:  ResultSuccess,
		ResultMsg: MsgSucceeded,
		ResultDt:  ResultDate(now),
		Data:      data,
	}
}
