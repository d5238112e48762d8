package vsdc

import "encoding/json"

// Code table names, as served by GET /api/vsdc/codes.
const (
	TableTaxType             = "taxType"
	TableProductType         = "productType"
	TableTransactionType     = "transactionType"
	TableSalesReceiptType    = "salesReceiptType"
	TablePaymentMethod       = "paymentMethod"
	TableTransactionProgress = "transactionProgress"
	TableRegistrationType    = "registrationType"
	TableStockInOutType      = "stockInOutType"
	TableRefundReasonCode    = "refundReasonCode"
)

// Direction of a stock in/out type.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// CodeDefinition maps a short code to its name. Rate is set for tax types only and
// Direction for stock in/out types only.
type CodeDefinition struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Rate        *float64  `json:"rate,omitempty"`
	Direction   Direction `json:"direction,omitempty"`
}

// CodeDefinitions is the read-only set of VSDC code tables. Build it once with
// NewCodeDefinitions and share it; nothing mutates it after construction.
type CodeDefinitions struct {
	tables map[string]map[string]CodeDefinition
}

func rate(r float64) *float64 { return &r }

func def(name, description string) CodeDefinition {
	return CodeDefinition{Name: name, Description: description}
}

func stock(name, description string, d Direction) CodeDefinition {
	return CodeDefinition{Name: name, Description: description, Direction: d}
}

// NewCodeDefinitions builds the tables of VSDC specification v1.0.4 section 4.
func NewCodeDefinitions() *CodeDefinitions {
	return &CodeDefinitions{tables: map[string]map[string]CodeDefinition{
		TableTaxType: {
			"A": {Name: "A-EX", Description: "Tax Exempt", Rate: rate(0)},
			"B": {Name: "B-18.00%", Description: "Standard Rate", Rate: rate(18)},
			"C": {Name: "C", Description: "Zero Rated", Rate: rate(0)},
			"D": {Name: "D", Description: "Other", Rate: rate(0)},
		},
		TableProductType: {
			"1": def("Raw Material", "Raw Material"),
			"2": def("Finished Product", "Finished Product"),
			"3": def("Service", "Service without stock"),
		},
		TableTransactionType: {
			"C": def("Copy", "Copy"),
			"N": def("Normal", "Normal"),
			"P": def("Proforma", "Proforma invoice"),
			"T": def("Training", "Training"),
		},
		TableSalesReceiptType: {
			"S": def("Sale", "Sale"),
			"R": def("Refund after Sale", "Refund after Sale"),
		},
		TablePaymentMethod: {
			"01": def("CASH", "CASH"),
			"02": def("CREDIT", "CREDIT"),
			"03": def("CASH/CREDIT", "CASH/CREDIT"),
			"04": def("BANK CHECK", "BANK CHECK PAYMENT"),
			"05": def("DEBIT&CREDIT CARD", "PAYMENT USING CARD"),
			"06": def("MOBILE MONEY", "MOBILE MONEY"),
			"07": def("OTHER", "OTHER MEANS OF PAYMENT"),
		},
		TableTransactionProgress: {
			"01": def("Wait for Approval", "Wait for Approval"),
			"02": def("Approved", "Approved"),
			"03": def("Cancel Requested", "Cancel Requested"),
			"04": def("Canceled", "Canceled"),
			"05": def("Refunded", "Refunded"),
			"06": def("Transferred", "Transferred"),
		},
		TableRegistrationType: {
			"A": def("Automatic", "Automatic"),
			"M": def("Manual", "Manual"),
		},
		TableStockInOutType: {
			"01": stock("Import", "Incoming-Import", DirectionIn),
			"02": stock("Purchase", "Incoming-Purchase", DirectionIn),
			"03": stock("Return", "Incoming-Return", DirectionIn),
			"04": stock("Stock Movement", "Incoming-Stock Movement", DirectionIn),
			"05": stock("Processing", "Incoming-Processing", DirectionIn),
			"06": stock("Adjustment", "Incoming-Adjustment", DirectionIn),
			"11": stock("Sale", "Outgoing-Sale", DirectionOut),
			"12": stock("Return", "Outgoing-Return", DirectionOut),
			"13": stock("Stock Movement", "Outgoing-Stock Movement", DirectionOut),
			"14": stock("Processing", "Outgoing-Processing", DirectionOut),
			"15": stock("Discarding", "Outgoing-Discarding", DirectionOut),
			"16": stock("Adjustment", "Outgoing-Adjustment", DirectionOut),
		},
		TableRefundReasonCode: {
			"01": def("Missing Quantity", "Missing Quantity"),
			"02": def("Missing Item", "Missing Item"),
			"03": def("Damaged", "Damaged"),
			"04": def("Wasted", "Wasted"),
			"05": def("Raw Material Shortage", "Raw Material Shortage"),
			"06": def("Refund", "Refund"),
			"07": def("Wrong Customer TIN", "Wrong Customer TIN"),
			"08": def("Wrong Customer name", "Wrong Customer name"),
			"09": def("Wrong Amount/price", "Wrong Amount/price"),
			"10": def("Wrong Quantity", "Wrong Quantity"),
			"11": def("Wrong Item(s)", "Wrong Item(s)"),
			"12": def("Wrong tax type", "Wrong tax type"),
			"13": def("Other reason", "Other reason"),
		},
	}}
}

// Lookup returns the definition of code in table.
func (d *CodeDefinitions) Lookup(table, code string) (CodeDefinition, bool) {
	cd, ok := d.tables[table][code]
	return cd, ok
}

// StockDirection resolves a stock in/out type code to IN or OUT.
func (d *CodeDefinitions) StockDirection(sarTyCd string) (Direction, bool) {
	cd, ok := d.Lookup(TableStockInOutType, sarTyCd)
	if !ok {
		return "", false
	}
	return cd.Direction, true
}

// TaxRate returns the percentage rate of a tax type.
func (d *CodeDefinitions) TaxRate(taxTyCd string) (float64, bool) {
	cd, ok := d.Lookup(TableTaxType, taxTyCd)
	if !ok || cd.Rate == nil {
		return 0, false
	}
	return *cd.Rate, true
}

func (d *CodeDefinitions) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.tables)
}
