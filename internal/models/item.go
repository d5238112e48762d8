package models

import (
	"time"
)

// ItemLocation addresses a school's inventory in the admin/district/school hierarchy.
type ItemLocation struct {
	AdminID    string `json:"adminId"`
	DistrictID string `json:"districtId"`
	SchoolID   string `json:"schoolId"`
}

// Item is a VSDC item master record plus local stock and sync bookkeeping. It is stored
// under the school's inventory collection and mirrored in vsdc_items.
type Item struct {
	Tin         string   `json:"tin"`
	BhfID       string   `json:"bhfId"`
	ItemCd      string   `json:"itemCd"`
	ItemClsCd   string   `json:"itemClsCd"`
	ItemTyCd    string   `json:"itemTyCd"`
	ItemNm      string   `json:"itemNm"`
	ItemStdNm   *string  `json:"itemStdNm"`
	OrgnNatCd   string   `json:"orgnNatCd"`
	PkgUnitCd   string   `json:"pkgUnitCd"`
	QtyUnitCd   string   `json:"qtyUnitCd"`
	TaxTyCd     string   `json:"taxTyCd"`
	BtchNo      *string  `json:"btchNo"`
	Bcd         *string  `json:"bcd"`
	DftPrc      float64  `json:"dftPrc"`
	GrpPrcL1    *float64 `json:"grpPrcL1"`
	GrpPrcL2    *float64 `json:"grpPrcL2"`
	GrpPrcL3    *float64 `json:"grpPrcL3"`
	GrpPrcL4    *float64 `json:"grpPrcL4"`
	GrpPrcL5    *float64 `json:"grpPrcL5"`
	AddInfo     *string  `json:"addInfo"`
	SftyQty     *float64 `json:"sftyQty"`
	IsrcAplcbYn string   `json:"isrcAplcbYn"`
	UseYn       string   `json:"useYn"`

	RegrNm string `json:"regrNm"`
	RegrID string `json:"regrId"`
	ModrNm string `json:"modrNm"`
	ModrID string `json:"modrId"`

	Quantity float64 `json:"quantity"`

	VsdcSynced       bool        `json:"vsdcSynced"`
	VsdcLastResult   *SyncResult `json:"vsdcLastResult"`
	VsdcSyncAttempts int         `json:"vsdcSyncAttempts"`
	SyncedToEbm      *bool       `json:"syncedToEbm,omitempty"`
	LastSyncAttempt  *time.Time  `json:"lastSyncAttempt,omitempty"`

	AdminID    string    `json:"adminId,omitempty"`
	DistrictID string    `json:"districtId,omitempty"`
	SchoolID   string    `json:"schoolId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	CreatedBy  string    `json:"createdBy"`
}

// ItemSyncPayload is the body of the EBM /items/saveItems call.
type ItemSyncPayload struct {
	Tin         string   `json:"tin"`
	BhfID       string   `json:"bhfId"`
	ItemCd      string   `json:"itemCd"`
	ItemClsCd   string   `json:"itemClsCd"`
	ItemTyCd    string   `json:"itemTyCd"`
	ItemNm      string   `json:"itemNm"`
	ItemStdNm   *string  `json:"itemStdNm"`
	OrgnNatCd   string   `json:"orgnNatCd"`
	PkgUnitCd   string   `json:"pkgUnitCd"`
	QtyUnitCd   string   `json:"qtyUnitCd"`
	TaxTyCd     string   `json:"taxTyCd"`
	BtchNo      *string  `json:"btchNo"`
	Bcd         *string  `json:"bcd"`
	DftPrc      float64  `json:"dftPrc"`
	GrpPrcL1    *float64 `json:"grpPrcL1"`
	GrpPrcL2    *float64 `json:"grpPrcL2"`
	GrpPrcL3    *float64 `json:"grpPrcL3"`
	GrpPrcL4    *float64 `json:"grpPrcL4"`
	GrpPrcL5    *float64 `json:"grpPrcL5"`
	AddInfo     *string  `json:"addInfo"`
	SftyQty     *float64 `json:"sftyQty"`
	IsrcAplcbYn string   `json:"isrcAplcbYn"`
	UseYn       string   `json:"useYn"`
	RegrNm      string   `json:"regrNm"`
	RegrID      string   `json:"regrId"`
	ModrNm      string   `json:"modrNm"`
	ModrID      string   `json:"modrId"`
}

// SyncPayload returns the VSDC fields of the item.
func (i *Item) SyncPayload() ItemSyncPayload {
	return ItemSyncPayload{
		Tin:         i.Tin,
		BhfID:       i.BhfID,
		ItemCd:      i.ItemCd,
		ItemClsCd:   i.ItemClsCd,
		ItemTyCd:    i.ItemTyCd,
		ItemNm:      i.ItemNm,
		ItemStdNm:   i.ItemStdNm,
		OrgnNatCd:   i.OrgnNatCd,
		PkgUnitCd:   i.PkgUnitCd,
		QtyUnitCd:   i.QtyUnitCd,
		TaxTyCd:     i.TaxTyCd,
		BtchNo:      i.BtchNo,
		Bcd:         i.Bcd,
		DftPrc:      i.DftPrc,
		GrpPrcL1:    i.GrpPrcL1,
		GrpPrcL2:    i.GrpPrcL2,
		GrpPrcL3:    i.GrpPrcL3,
		GrpPrcL4:    i.GrpPrcL4,
		GrpPrcL5:    i.GrpPrcL5,
		AddInfo:     i.AddInfo,
		SftyQty:     i.SftyQty,
		IsrcAplcbYn: i.IsrcAplcbYn,
		UseYn:       i.UseYn,
		RegrNm:      i.RegrNm,
		RegrID:      i.RegrID,
		ModrNm:      i.ModrNm,
		ModrID:      i.ModrID,
	}
}

// ItemListEntry is one row of /items/selectItems.
type ItemListEntry struct {
	Tin         string   `json:"tin"`
	ItemCd      string   `json:"itemCd"`
	ItemClsCd   string   `json:"itemClsCd"`
	ItemTyCd    string   `json:"itemTyCd"`
	ItemNm      string   `json:"itemNm"`
	ItemStdNm   *string  `json:"itemStdNm"`
	OrgnNatCd   string   `json:"orgnNatCd"`
	PkgUnitCd   string   `json:"pkgUnitCd"`
	QtyUnitCd   string   `json:"qtyUnitCd"`
	TaxTyCd     string   `json:"taxTyCd"`
	BtchNo      *string  `json:"btchNo"`
	Bcd         *string  `json:"bcd"`
	DftPrc      float64  `json:"dftPrc"`
	GrpPrcL1    *float64 `json:"grpPrcL1"`
	GrpPrcL2    *float64 `json:"grpPrcL2"`
	GrpPrcL3    *float64 `json:"grpPrcL3"`
	GrpPrcL4    *float64 `json:"grpPrcL4"`
	GrpPrcL5    *float64 `json:"grpPrcL5"`
	AddInfo     *string  `json:"addInfo"`
	SftyQty     *float64 `json:"sftyQty"`
	IsrcAplcbYn string   `json:"isrcAplcbYn"`
	UseYn       string   `json:"useYn"`
	Quantity    float64  `json:"quantity"`
}

// ListEntry projects the item for /items/selectItems. docID wins over the stored itemCd.
func (i *Item) ListEntry(docID string) ItemListEntry {
	code := i.ItemCd
	if docID != "" {
		code = docID
	}
	return ItemListEntry{
		Tin:         i.Tin,
		ItemCd:      code,
		ItemClsCd:   i.ItemClsCd,
		ItemTyCd:    i.ItemTyCd,
		ItemNm:      i.ItemNm,
		ItemStdNm:   i.ItemStdNm,
		OrgnNatCd:   i.OrgnNatCd,
		PkgUnitCd:   i.PkgUnitCd,
		QtyUnitCd:   i.QtyUnitCd,
		TaxTyCd:     i.TaxTyCd,
		BtchNo:      i.BtchNo,
		Bcd:         i.Bcd,
		DftPrc:      i.DftPrc,
		GrpPrcL1:    i.GrpPrcL1,
		GrpPrcL2:    i.GrpPrcL2,
		GrpPrcL3:    i.GrpPrcL3,
		GrpPrcL4:    i.GrpPrcL4,
		GrpPrcL5:    i.GrpPrcL5,
		AddInfo:     i.AddInfo,
		SftyQty:     i.SftyQty,
		IsrcAplcbYn: i.IsrcAplcbYn,
		UseYn:       i.UseYn,
		Quantity:    i.Quantity,
	}
}
