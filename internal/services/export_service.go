package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportService produces spreadsheet reports of the registry for
// administrators.
type ExportService struct {
	contributorService *ContributorService
}

func NewExportService(contributorService *ContributorService) *ExportService {
	return &ExportService{
		contributorService: contributorService,
	}
}

// ExportContributors renders all registered contributors into an xlsx
// workbook. The caller owns closing the returned file.
func (s *ExportService) ExportContributors() (*excelize.File, error) {
	contributors, err := s.contributorService.ListContributors()
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()

	sheet := "Contributors"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Address", "GitHub Handle", "Reputation Score", "Registered At"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for row, contributor := range contributors {
		values := []interface{}{
			contributor.Address,
			contributor.GithubHandle,
			contributor.ReputationScore,
			contributor.RegisteredAt.Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// ExportFilename returns a report filename for the given contributor count.
func ExportFilename(count int) string {
	return fmt.Sprintf("contributors_%d.xlsx", count)
}
