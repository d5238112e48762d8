package services

import (
	"vsdcgateway/internal/models"
	"vsdcgateway/internal/vsdc"
)

const defaultCustomerTin = "100600570"

// LookupService serves the VSDC reference data: code tables, classifications, customers
// and branches.
type LookupService interface {
	Codes() *vsdc.CodeDefinitions
	CodeClasses() []vsdc.CodeClass
	ItemClasses() []vsdc.ItemClass
	Customers(payload map[string]any) []models.Customer
	Branches(payload map[string]any) []models.Branch
}

type lookupService struct {
	codes *vsdc.CodeDefinitions
}

func NewLookupService(codes *vsdc.CodeDefinitions) LookupService {
	return &lookupService{codes: codes}
}

func (s *lookupService) Codes() *vsdc.CodeDefinitions {
	return s.codes
}

func (s *lookupService) CodeClasses() []vsdc.CodeClass {
	return vsdc.CodeClasses()
}

func (s *lookupService) ItemClasses() []vsdc.ItemClass {
	return vsdc.ItemClasses()
}

func (s *lookupService) Customers(payload map[string]any) []models.Customer {
	return []models.Customer{{
		Tin:         vsdc.StringOr(payload["custmTin"], defaultCustomerTin),
		TaxprNm:     "Customer Name",
		TaxprSttsCd: "A",
		PrvncNm:     "KIGALI CITY",
		DstrtNm:     "KICUKIRO",
		SctrNm:      "KAGARAMA",
		LocDesc:     "Kicukiro",
	}}
}

func (s *lookupService) Branches(payload map[string]any) []models.Branch {
	return []models.Branch{{
		Tin:       vsdc.String(payload["tin"]),
		BhfID:     headquarterBhfID,
		BhfNm:     "Headquarter",
		BhfSttsCd: "01",
		PrvncNm:   "KIGALI CITY",
		DstrtNm:   "GASABO",
		SctrNm:    "KACYIRU",
		MgrNm:     "Manager Name",
		MgrTelNo:  "0789000000",
		MgrEmail:  "head@test.com",
		HqYn:      "Y",
	}}
}
