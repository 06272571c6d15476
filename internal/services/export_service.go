package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/nutriform/nutriform/internal/models"
)

var ExportCSVHeader = []string{"sex", "age", "height", "weight", "activity", "meals", "snacks"}

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// WriteCSV streams the responses as CSV: the header is pushed to w before
// any record, and each record is pushed as soon as it is serialized, so the
// caller can start transmitting mid-export. The first write error aborts the
// export.
func (service *ExportService) WriteCSV(w io.Writer, responses []models.SurveyResponse) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ExportCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv header: %w", err)
	}

	for _, response := range responses {
		if err := writer.Write(exportCSVColumns(response)); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return fmt.Errorf("flush csv record: %w", err)
		}
	}

	return nil
}

func exportCSVColumns(response models.SurveyResponse) []string {
	return []string{
		response.Sex,
		strconv.Itoa(response.Age),
		strconv.Itoa(response.HeightCm),
		strconv.Itoa(response.WeightKg),
		strconv.Itoa(response.Activity),
		strconv.Itoa(response.Meals),
		strconv.Itoa(response.Snacks),
	}
}
