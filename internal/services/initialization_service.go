package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vsdcgateway/internal/models"
	"vsdcgateway/internal/repositories"
	"vsdcgateway/internal/vsdc"
)

const headquarterBhfID = "00"

type InitializationService interface {
	// Initialize returns the device initialization response for tin/bhfId and records it.
	Initialize(ctx context.Context, payload map[string]any) (*vsdc.Envelope, error)
	DeviceInfo(ctx context.Context, tin string) (*models.DeviceInfo, error)
}

type initializationService struct {
	initRepo repositories.InitializationRepository
	now      func() time.Time
}

func NewInitializationService(initRepo repositories.InitializationRepository) InitializationService {
	return &initializationService{initRepo: initRepo, now: time.Now}
}

// TaxpayerInfoFor is the registration data served for a device of tin at branch bhfID.
func TaxpayerInfoFor(tin, bhfID string) models.TaxpayerInfo {
	hq := bhfID == headquarterBhfID
	info := models.TaxpayerInfo{
		Tin:       tin,
		TaxprNm:   "Test VSDC User",
		BsnsActv:  "School Feeding Program",
		BhfID:     bhfID,
		BhfNm:     "Branch " + bhfID,
		BhfOpenDt: "20210101",
		PrvncNm:   "KIGALI CITY",
		DstrtNm:   "GASABO",
		SctrNm:    "JALI",
		LocDesc:   "KN 5 St.",
		HqYn:      "N",
		MgrNm:     "School Manager",
		MgrTelNo:  "0780000000",
		MgrEmail:  "school@test.com",
		DvcID:     tin + "7006310",
	}
	if hq {
		info.BhfNm = "Headquarter"
		info.HqYn = "Y"
	}
	return info
}

func (s *initializationService) Initialize(ctx context.Context, payload map[string]any) (*vsdc.Envelope, error) {
	if err := missing("", payload, vsdc.InitRequiredFields); err != nil {
		return nil, err
	}

	now := s.now()
	tin := vsdc.String(payload["tin"])
	bhfID := vsdc.String(payload["bhfId"])
	response := vsdc.Succeeded(models.InitInfoData{Info: TaxpayerInfoFor(tin, bhfID)}, now)

	init := &models.DeviceInitialization{
		Tin:           tin,
		BhfID:         bhfID,
		DvcSrNo:       vsdc.String(payload["dvcSrNo"]),
		InitializedAt: now.UTC(),
		Response:      response,
	}
	if err := s.initRepo.Save(ctx, init); err != nil {
		return nil, fmt.Errorf("save initialization for %s: %w", tin, err)
	}
	return &response, nil
}

func (s *initializationService) DeviceInfo(ctx context.Context, tin string) (*models.DeviceInfo, error) {
	init, err := s.initRepo.Get(ctx, tin)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) || errors.Is(err, repositories.ErrInvalidPath) {
			return nil, ErrDeviceNotInitialized
		}
		return nil, err
	}
	return &models.DeviceInfo{
		Initialized:   true,
		InitializedAt: init.InitializedAt,
		Tin:           init.Tin,
		BhfID:         init.BhfID,
		DvcSrNo:       init.DvcSrNo,
	}, nil
}
