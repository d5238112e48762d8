package vsdc

// CodeDetail is one entry of a code classification (dtList).
type CodeDetail struct {
	Cd         string  `json:"cd"`
	CdNm       string  `json:"cdNm"`
	CdDesc     string  `json:"cdDesc"`
	UseYn      string  `json:"useYn"`
	SrtOrd     string  `json:"srtOrd"`
	UserDfnCd1 *string `json:"userDfnCd1"`
	UserDfnCd2 *string `json:"userDfnCd2"`
	UserDfnCd3 *string `json:"userDfnCd3"`
}

// CodeClass is one classification returned by /code/selectCodes.
type CodeClass struct {
	CdCls      string       `json:"cdCls"`
	CdClsNm    string       `json:"cdClsNm"`
	CdClsDesc  string       `json:"cdClsDesc"`
	UseYn      string       `json:"useYn"`
	UserDfnNm1 *string      `json:"userDfnNm1"`
	UserDfnNm2 *string      `json:"userDfnNm2"`
	UserDfnNm3 *string      `json:"userDfnNm3"`
	DtList     []CodeDetail `json:"dtList"`
}

// ItemClass is one item classification returned by /itemClass/selectItemsClass.
type ItemClass struct {
	ItemClsCd  string `json:"itemClsCd"`
	ItemClsNm  string `json:"itemClsNm"`
	ItemClsLvl int    `json:"itemClsLvl"`
	TaxTyCd    string `json:"taxTyCd"`
	MjtrTgYn   string `json:"mjtrTgYn"`
	UseYn      string `json:"useYn"`
}

func strPtr(s string) *string { return &s }

func details(entries ...[3]string) []CodeDetail {
	out := make([]CodeDetail, 0, len(entries))
	for i, e := range entries {
		out = append(out, CodeDetail{
			Cd:     e[0],
			CdNm:   e[1],
			CdDesc: e[2],
			UseYn:  "Y",
			SrtOrd: String(i + 1),
		})
	}
	return out
}

// CodeClasses returns the code classifications known to the gateway. Each call builds a
// fresh slice so callers may not corrupt shared state.
func CodeClasses() []CodeClass {
	taxTypes := details(
		[3]string{"A", "A-EX", "Tax Exempt"},
		[3]string{"B", "B-18.00%", "Standard Rate"},
		[3]string{"C", "C", "Zero Rated"},
		[3]string{"D", "D", "Other"},
	)
	for i, r := range []string{"0", "18", "0", "0"} {
		taxTypes[i].UserDfnCd1 = strPtr(r)
	}

	return []CodeClass{
		{CdCls: "04", CdClsNm: "TaxType", CdClsDesc: "Tax Type Codes", UseYn: "Y", UserDfnNm1: strPtr("TaxRate"), DtList: taxTypes},
		{CdCls: "10", CdClsNm: "UnitOfQuantity", CdClsDesc: "Quantity Unit Codes", UseYn: "Y", DtList: details(
			[3]string{"KG", "Kilogram", "Kilogram"},
			[3]string{"L", "Litre", "Litre"},
			[3]string{"U", "Pieces", "Pieces/Items"},
		)},
		{CdCls: "17", CdClsNm: "PackagingUnit", CdClsDesc: "Packaging Unit Codes", UseYn: "Y", DtList: details(
			[3]string{"AM", "Ampoule", "Ampoule"},
			[3]string{"BA", "Barrel", "Barrel"},
			[3]string{"BG", "Bag", "Bag"},
			[3]string{"NT", "Net", "Net"},
		)},
		{CdCls: "24", CdClsNm: "ProductType", CdClsDesc: "Product Type Codes", UseYn: "Y", DtList: details(
			[3]string{"1", "Raw Material", "Raw Material"},
			[3]string{"2", "Finished Product", "Finished Product"},
			[3]string{"3", "Service", "Service without stock"},
		)},
		{CdCls: "07", CdClsNm: "PaymentMethod", CdClsDesc: "Payment Method Codes", UseYn: "Y", DtList: details(
			[3]string{"01", "CASH", "CASH"},
			[3]string{"02", "CREDIT", "CREDIT"},
			[3]string{"03", "CASH/CREDIT", "CASH/CREDIT"},
			[3]string{"04", "BANK CHECK", "BANK CHECK PAYMENT"},
			[3]string{"05", "DEBIT&CREDIT CARD", "PAYMENT USING CARD"},
			[3]string{"06", "MOBILE MONEY", "MOBILE MONEY"},
			[3]string{"07", "OTHER", "OTHER"},
		)},
	}
}

// ItemClasses returns the item classifications used by the school feeding catalog.
func ItemClasses() []ItemClass {
	return []ItemClass{
		{ItemClsCd: "5059690800", ItemClsNm: "Food Products", ItemClsLvl: 1, TaxTyCd: "B", MjtrTgYn: "Y", UseYn: "Y"},
		{ItemClsCd: "5022110801", ItemClsNm: "Beverages", ItemClsLvl: 1, TaxTyCd: "B", MjtrTgYn: "Y", UseYn: "Y"},
		{ItemClsCd: "1110160600", ItemClsNm: "Grains", ItemClsLvl: 2, TaxTyCd: "B", MjtrTgYn: "N", UseYn: "Y"},
		{ItemClsCd: "1110170400", ItemClsNm: "Vegetables", ItemClsLvl: 2, TaxTyCd: "A", MjtrTgYn: "N", UseYn: "Y"},
	}
}
