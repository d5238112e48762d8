package models

import "time"

// SalesReceipt is the receipt data issued for a saved sales transaction.
type SalesReceipt struct {
	RcptNo           int    `json:"rcptNo"`
	IntrlData        string `json:"intrlData"`
	RcptSign         string `json:"rcptSign"`
	TotRcptNo        int    `json:"totRcptNo"`
	VsdcRcptPbctDate string `json:"vsdcRcptPbctDate"`
	SdcID            string `json:"sdcId"`
	MrcNo            string `json:"mrcNo"`
}

// SaleRecord is a stored sales transaction: the request as received plus receipt data.
type SaleRecord struct {
	ID        string
	Payload   map[string]any
	SellerUID string
	Receipt   SalesReceipt
	CreatedAt time.Time
}

// Fields returns the document body of the record.
func (s *SaleRecord) Fields() map[string]any {
	fields := make(map[string]any, len(s.Payload)+5)
	for k, v := range s.Payload {
		fields[k] = v
	}
	fields["sellerUid"] = s.SellerUID
	fields["rcptNo"] = s.Receipt.RcptNo
	fields["intrlData"] = s.Receipt.IntrlData
	fields["rcptSign"] = s.Receipt.RcptSign
	fields["createdAt"] = s.CreatedAt
	return fields
}

// LastInvoice reports the latest invoice and receipt numbers for a taxpayer.
type LastInvoice struct {
	LastSaleInvcNo   any     `json:"lastSaleInvcNo"`
	LastSaleRcptNo   any     `json:"lastSaleRcptNo"`
	LastPchsInvcNo   int     `json:"lastPchsInvcNo"`
	LastInvcNo       *string `json:"lastInvcNo"`
	LastTrainInvcNo  *string `json:"lastTrainInvcNo"`
	LastProfrmInvcNo *string `json:"lastProfrmInvcNo"`
	LastCopyInvcNo   *string `json:"lastCopyInvcNo"`
}

// LegacyInvoice is the result of the pre-VSDC invoice endpoint.
type LegacyInvoice struct {
	Success   bool   `json:"success"`
	SellerUID string `json:"sellerUid"`
	SaleID    string `json:"saleId"`
	Message   string `json:"message"`
}
