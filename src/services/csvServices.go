package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/NUGEP/NUGEP-Backend/src/apperrors"
	"github.com/NUGEP/NUGEP-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
)

// Import defaults for missing columns.
const (
	defaultYear     = "S/D"
	defaultCreator  = "Unknown"
	defaultTypeName = "Storage"
)

var csvHeader = []string{
	"ID", "Registration No.", "Title", "Creator", "Year",
	"Type", "Status", "Location", "Exhibition History",
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// ExportCSV writes the full collection as UTF-8 CSV, one row per artifact,
// exhibition names flattened with a semicolon separator. Export never
// mutates state; the audit entry is its only side effect.
func (s *ArtifactService) ExportCSV(w io.Writer, actor models.Actor) error {
	var artifacts []models.ArtifactModel
	err := s.db.
		Preload("ExhibitionHistory").
		Order("id ASC").
		Find(&artifacts).Error
	if err != nil {
		return apperrors.Persistence("export artifacts", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, artifact := range artifacts {
		names := make([]string, 0, len(artifact.ExhibitionHistory))
		for _, membership := range artifact.ExhibitionHistory {
			names = append(names, membership.Name)
		}
		row := []string{
			strconv.Itoa(artifact.ID),
			artifact.RegNumber,
			artifact.Title,
			artifact.Artist,
			artifact.Year,
			artifact.Type,
			artifact.Status,
			artifact.Location,
			strings.Join(names, ";"),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	s.audit.Record(actor, models.ActionExport, "Exportou planilha completa do acervo")
	return nil
}

// ImportCSV reads rows in the export shape and creates one brand-new
// artifact per row: fresh identity, empty history and movements, Stored
// unless a status column says otherwise. Missing trailing columns get
// documented defaults. Import never reconstructs history, so it is not an
// inverse of export.
func (s *ArtifactService) ImportCSV(r io.Reader, actor models.Actor) (*ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.Validation("arquivo CSV inválido: %v", err)
	}

	result := &ImportResult{Errors: []string{}}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		// Header row in the export shape.
		if i == 0 && strings.EqualFold(strings.TrimSpace(row[0]), "ID") {
			continue
		}

		artifact := artifactFromRow(row)
		if strings.TrimSpace(artifact.Title) == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: título obrigatório", i+1))
			continue
		}

		artifact.CreatedBy = actor.Name
		if err := s.db.Create(artifact).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	s.invalidateCache("all_artifacts")
	s.invalidateCache("artifact_summaries")

	if result.Imported == 0 && len(result.Errors) > 0 {
		return result, apperrors.Validation("nenhuma ficha pôde ser importada")
	}

	if result.Imported > 0 {
		s.audit.Record(actor, models.ActionImport,
			fmt.Sprintf("Importou %d fichas via CSV", result.Imported))
	}
	return result, nil
}

// ImportArtifactsFromExcel reads the first sheet of a workbook using the
// same column layout and defaults as the CSV import.
func (s *ArtifactService) ImportArtifactsFromExcel(r io.Reader, actor models.Actor) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.Validation("arquivo excel inválido: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.Validation("o arquivo não contém planilhas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.Validation("não foi possível ler a planilha %s: %v", sheets[0], err)
	}

	result := &ImportResult{Errors: []string{}}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if i == 0 && strings.EqualFold(strings.TrimSpace(row[0]), "ID") {
			continue
		}

		artifact := artifactFromRow(row)
		if strings.TrimSpace(artifact.Title) == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: título obrigatório", i+1))
			continue
		}

		artifact.CreatedBy = actor.Name
		if err := s.db.Create(artifact).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: %v", i+1, err))
			continue
		}
		result.Imported++
	}

	s.invalidateCache("all_artifacts")
	s.invalidateCache("artifact_summaries")

	if result.Imported == 0 && len(result.Errors) > 0 {
		return result, apperrors.Validation("nenhuma ficha pôde ser importada")
	}

	if result.Imported > 0 {
		s.audit.Record(actor, models.ActionImport,
			fmt.Sprintf("Importou %d fichas via Excel", result.Imported))
	}
	return result, nil
}

// artifactFromRow maps a tabular row onto a fresh artifact. Missing
// trailing columns fall back to the documented defaults.
func artifactFromRow(row []string) *models.ArtifactModel {
	cell := func(index int) string {
		if index < len(row) {
			return strings.TrimSpace(row[index])
		}
		return ""
	}

	artifact := &models.ArtifactModel{
		RegNumber: cell(1),
		Title:     cell(2),
		Artist:    cell(3),
		Year:      cell(4),
		Type:      cell(5),
		Status:    models.StatusStored,
		Location:  cell(7),
	}

	if artifact.Artist == "" {
		artifact.Artist = defaultCreator
	}
	if artifact.Year == "" {
		artifact.Year = defaultYear
	}
	if artifact.Type == "" {
		artifact.Type = defaultTypeName
	}
	if artifact.Location == "" {
		artifact.Location = defaultTypeName
	}
	artifact.HomeLocation = artifact.Location

	switch cell(6) {
	case models.StatusStored, models.StatusOnDisplay, models.StatusOnLoan, models.StatusInRestoration:
		artifact.Status = cell(6)
	}

	return artifact
}
