package models

import "time"

// DeviceInitialization is the stored result of /initializer/selectInitInfo.
type DeviceInitialization struct {
	Tin           string    `json:"tin"`
	BhfID         string    `json:"bhfId"`
	DvcSrNo       string    `json:"dvcSrNo"`
	InitializedAt time.Time `json:"initializedAt"`
	Response      any       `json:"response"`
}

// DeviceInfo is returned by /device-info/:tin.
type DeviceInfo struct {
	Initialized   bool      `json:"initialized"`
	InitializedAt time.Time `json:"initializedAt"`
	Tin           string    `json:"tin"`
	BhfID         string    `json:"bhfId"`
	DvcSrNo       string    `json:"dvcSrNo"`
}

// TaxpayerInfo is the info block of an initialization response.
type TaxpayerInfo struct {
	Tin              string  `json:"tin"`
	TaxprNm          string  `json:"taxprNm"`
	BsnsActv         string  `json:"bsnsActv"`
	BhfID            string  `json:"bhfId"`
	BhfNm            string  `json:"bhfNm"`
	BhfOpenDt        string  `json:"bhfOpenDt"`
	PrvncNm          string  `json:"prvncNm"`
	DstrtNm          string  `json:"dstrtNm"`
	SctrNm           string  `json:"sctrNm"`
	LocDesc          string  `json:"locDesc"`
	HqYn             string  `json:"hqYn"`
	MgrNm            string  `json:"mgrNm"`
	MgrTelNo         string  `json:"mgrTelNo"`
	MgrEmail         string  `json:"mgrEmail"`
	SdcID            *string `json:"sdcId"`
	MrcNo            *string `json:"mrcNo"`
	DvcID            string  `json:"dvcId"`
	IntrlKey         *string `json:"intrlKey"`
	SignKey          *string `json:"signKey"`
	CmcKey           *string `json:"cmcKey"`
	LastPchsInvcNo   int     `json:"lastPchsInvcNo"`
	LastSaleRcptNo   int     `json:"lastSaleRcptNo"`
	LastInvcNo       *int    `json:"lastInvcNo"`
	LastSaleInvcNo   int     `json:"lastSaleInvcNo"`
	LastTrainInvcNo  *int    `json:"lastTrainInvcNo"`
	LastProfrmInvcNo *int    `json:"lastProfrmInvcNo"`
	LastCopyInvcNo   *int    `json:"lastCopyInvcNo"`
}

// InitInfoData is the data block of an initialization response.
type InitInfoData struct {
	Info TaxpayerInfo `json:"info"`
}
