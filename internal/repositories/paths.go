package repositories

import (
	"errors"
	"fmt"
	"strings"
)

// Collections of the document store.
const (
	CollectionAdmin          = "admin"
	CollectionDistrict       = "district"
	CollectionSchool         = "school"
	CollectionInventory      = "inventory"
	CollectionSeller         = "seller"
	CollectionSales          = "sales"
	CollectionVSDCItems      = "vsdc_items"
	CollectionVSDCSales      = "vsdc_sales"
	CollectionStockMovements = "vsdc_stock_movements"
	CollectionStockMaster    = "vsdc_stock_master"
	CollectionInitialization = "vsdc_initializations"
	CollectionAuditLogs      = "vsdc_audit_logs"
)

var ErrInvalidPath = errors.New("invalid document path")

// ValidateSegment rejects empty ids and ids containing a slash.
func ValidateSegment(segment string) error {
	if strings.TrimSpace(segment) == "" {
		return fmt.Errorf("%w: empty segment", ErrInvalidPath)
	}
	if strings.Contains(segment, "/") {
		return fmt.Errorf("%w: segment %q contains '/'", ErrInvalidPath, segment)
	}
	return nil
}

// DocPath joins alternating collection and document segments into a document path.
func DocPath(segments ...string) (string, error) {
	if len(segments) == 0 || len(segments)%2 != 0 {
		return "", fmt.Errorf("%w: a document path needs collection/id pairs, got %d segments", ErrInvalidPath, len(segments))
	}
	for _, s := range segments {
		if err := ValidateSegment(s); err != nil {
			return "", err
		}
	}
	return strings.Join(segments, "/"), nil
}

// CollectionPath joins segments that end in a collection.
func CollectionPath(segments ...string) (string, error) {
	if len(segments)%2 != 1 {
		return "", fmt.Errorf("%w: a collection path needs an odd number of segments, got %d", ErrInvalidPath, len(segments))
	}
	for _, s := range segments {
		if err := ValidateSegment(s); err != nil {
			return "", err
		}
	}
	return strings.Join(segments, "/"), nil
}

// splitDocPath returns the collection name, the parent document path ("" at the root)
// and the document id of a document path.
func splitDocPath(path string) (collection, parent, id string, err error) {
	segments := strings.Split(path, "/")
	if _, err := DocPath(segments...); err != nil {
		return "", "", "", err
	}
	n := len(segments)
	return segments[n-2], strings.Join(segments[:n-2], "/"), segments[n-1], nil
}

// SchoolInventoryPath is admin/{a}/district/{d}/school/{s}/inventory/{itemCd}.
func SchoolInventoryPath(adminID, districtID, schoolID, itemCd string) (string, error) {
	return DocPath(CollectionAdmin, adminID, CollectionDistrict, districtID, CollectionSchool, schoolID, CollectionInventory, itemCd)
}

// SellerSalesPath is admin/{a}/district/{d}/school/{s}/seller/{uid}/sales.
func SellerSalesPath(adminID, districtID, schoolID, sellerUID string) (string, error) {
	return CollectionPath(CollectionAdmin, adminID, CollectionDistrict, districtID, CollectionSchool, schoolID, CollectionSeller, sellerUID, CollectionSales)
}
