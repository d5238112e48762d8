package models

// Customer is one entry of /customers/selectCustomer.
type Customer struct {
	Tin         string `json:"tin"`
	TaxprNm     string `json:"taxprNm"`
	TaxprSttsCd string `json:"taxprSttsCd"`
	PrvncNm     string `json:"prvncNm"`
	DstrtNm     string `json:"dstrtNm"`
	SctrNm      string `json:"sctrNm"`
	LocDesc     string `json:"locDesc"`
}

// Branch is one entry of /branches/selectBranches.
type Branch struct {
	Tin       string  `json:"tin"`
	BhfID     string  `json:"bhfId"`
	BhfNm     string  `json:"bhfNm"`
	BhfSttsCd string  `json:"bhfSttsCd"`
	PrvncNm   string  `json:"prvncNm"`
	DstrtNm   string  `json:"dstrtNm"`
	SctrNm    string  `json:"sctrNm"`
	LocDesc   *string `json:"locDesc"`
	MgrNm     string  `json:"mgrNm"`
	MgrTelNo  string  `json:"mgrTelNo"`
	MgrEmail  string  `json:"mgrEmail"`
	HqYn      string  `json:"hqYn"`
}
