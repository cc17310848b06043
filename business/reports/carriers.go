package reports

import (
	"context"

	"webstore/pkg/logger"
)

// ListCarriers lists the carriers available for shipping, with contact info.
func (s *ReportsService) ListCarriers(ctx context.Context) ([]CarrierRow, error) {
	carriers, err := s.carrierRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to fetch carriers", err)
		return nil, err
	}

	rows := make([]CarrierRow, 0, len(carriers))
	for _, c := range carriers {
		rows = append(rows, CarrierRow{
			CarrierName:  c.CarrierName,
			ContactURL:   c.ContactURL,
			ContactPhone: c.ContactPhone,
		})
	}

	return rows, nil
}
