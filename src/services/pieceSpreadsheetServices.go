package services

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ACORDE/memorial-acervo/src/dtos"
	"github.com/ACORDE/memorial-acervo/src/forms"
	"github.com/ACORDE/memorial-acervo/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const exportSheet = "Acervo"

// Spreadsheet columns, shared by import and export.
const (
	colDenomination = iota
	colAuthors
	colTitleByAuthor
	colRegistryNumber
	colOrderNumber
	colStatus
	colThesaurus
	colDescription
	colDimensions
	colMaterialTechnique
	colConservationState
	colProductionPlace
	colProductionStart
	colProductionEnd
	colCanReproduce
	colReproductionConditions
	colTypology
	colAcquisitionMethod
	colOrganizingAxis
	colExhibition
	colInternalLocation
	colPublished
)

var spreadsheetHeader = []interface{}{
	"Denominação", "Autores", "Título atribuído pelo autor", "Número de registro",
	"Número de ordem", "Situação", "Tesauro", "Descrição", "Dimensões",
	"Material/Técnica", "Estado de conservação", "Local de produção",
	"Data inicial de produção", "Data final de produção", "Pode reproduzir",
	"Condições de reprodução", "Tipologia", "Forma de aquisição",
	"Eixo organizador", "Exposição", "Localização interna", "Publicada",
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Errors   []string `json:"errors"`
}

// pieceImport resolves names to ids once per spreadsheet.
type pieceImport struct {
	db          *gorm.DB
	authors     map[string]models.PersonModel
	axes        map[string]int
	locations   map[string]int
	exhibitions map[string]int
}

// ImportPiecesFromExcel creates one piece per row of the first sheet. The
// header row is skipped; missing authors, axes and locations are created by
// name.
func (s *PieceService) ImportPiecesFromExcel(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("planilha inválida: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("planilha sem abas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("não foi possível ler a aba %s: %w", sheets[0], err)
	}

	imp := &pieceImport{
		db:          s.db,
		authors:     map[string]models.PersonModel{},
		axes:        map[string]int{},
		locations:   map[string]int{},
		exhibitions: map[string]int{},
	}
	var exhibitions []models.ExhibitionModel
	if err := s.db.Find(&exhibitions).Error; err != nil {
		return nil, err
	}
	for _, e := range exhibitions {
		imp.exhibitions[strings.ToLower(e.Name)] = e.ID
	}

	s.log.Info("importing pieces from spreadsheet", "sheet", sheets[0], "rows", len(rows))
	result := &ImportResult{Errors: []string{}}
	today := models.Today()
	for i, row := range rows {
		if i == 0 || isBlankRow(row) {
			continue
		}
		line := i + 1

		input, rowErrs := pieceInputFromRow(row)
		errs := input.Validate(today)
		errs.Merge("", rowErrs)
		if errs.HasErrors() {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: %s", line, describeErrors(errs)))
			continue
		}

		authors, err := imp.resolve(&input, row)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: %v", line, err))
			continue
		}

		piece := input.ToModel()
		err = s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Omit(clause.Associations).Create(&piece).Error; err != nil {
				return err
			}
			if len(authors) == 0 {
				return nil
			}
			return tx.Model(&piece).Association("Authors").Append(authors)
		})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: %v", line, err))
			continue
		}
		result.Imported++
	}

	if len(result.Errors) > 0 {
		s.log.Warn("spreadsheet import finished with errors", "imported", result.Imported, "errors", len(result.Errors))
	}
	if result.Imported == 0 && len(result.Errors) > 0 {
		return result, errors.New("nenhuma peça pôde ser importada")
	}
	return result, nil
}

// ExportPiecesToExcel writes every piece to a single sheet using the same
// columns accepted by ImportPiecesFromExcel.
func (s *PieceService) ExportPiecesToExcel(w io.Writer) error {
	pieces, err := s.GetAllPieces()
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &spreadsheetHeader); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(len(spreadsheetHeader))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(exportSheet, "A1", last+"1", bold); err != nil {
		return err
	}

	for i, p := range pieces {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := pieceRow(p)
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func pieceRow(p models.CollectionPieceModel) []interface{} {
	names := make([]string, 0, len(p.Authors))
	for _, a := range p.Authors {
		names = append(names, a.Name)
	}
	row := make([]interface{}, len(spreadsheetHeader))
	row[colDenomination] = p.Denomination
	row[colAuthors] = strings.Join(names, "; ")
	row[colTitleByAuthor] = p.TitleByAuthor
	row[colRegistryNumber] = derefString(p.RegistryNumber)
	row[colOrderNumber] = derefString(p.OrderNumber)
	row[colStatus] = models.ChoiceLabel(models.PieceStatusChoices, string(p.Status))
	row[colThesaurus] = derefString(p.Thesaurus)
	row[colDescription] = p.Description
	row[colDimensions] = derefString(p.Dimensions)
	row[colMaterialTechnique] = p.MaterialTechnique
	row[colConservationState] = models.ChoiceLabel(models.ConservationChoices, string(p.ConservationState))
	row[colProductionPlace] = p.ProductionPlace
	row[colProductionStart] = dateCell(p.ProductionStartDate)
	row[colProductionEnd] = dateCell(p.ProductionEndDate)
	row[colCanReproduce] = yesNo(p.CanReproduce)
	row[colReproductionConditions] = derefString(p.ReproductionConditions)
	row[colTypology] = models.ChoiceLabel(models.TypologyChoices, string(p.Typology))
	row[colAcquisitionMethod] = models.ChoiceLabel(models.AcquisitionChoices, string(p.AcquisitionMethod))
	row[colOrganizingAxis] = ""
	if p.OrganizingAxis != nil {
		row[colOrganizingAxis] = p.OrganizingAxis.Label
	}
	row[colExhibition] = ""
	if p.Exhibition != nil {
		row[colExhibition] = p.Exhibition.Name
	}
	row[colInternalLocation] = ""
	if p.InternalLocation != nil {
		row[colInternalLocation] = p.InternalLocation.Label
	}
	row[colPublished] = yesNo(p.Published)
	return row
}

// pieceInputFromRow reads the scalar columns of a row. Reference columns are
// resolved later by pieceImport.resolve.
func pieceInputFromRow(row []string) (dtos.PieceInput, *forms.Errors) {
	errs := forms.NewErrors()
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	optionalCell := func(i int) *string {
		if v := cell(i); v != "" {
			return &v
		}
		return nil
	}
	choice := func(i int, choices []models.Choice) string {
		v := cell(i)
		if code, ok := models.ChoiceValue(choices, v); ok {
			return code
		}
		return v
	}
	date := func(i int, field string) *models.Date {
		v := cell(i)
		if v == "" {
			return nil
		}
		d, err := parseSpreadsheetDate(v)
		if err != nil {
			errs.Add(field, "Informe uma data válida.")
			return nil
		}
		return &d
	}
	flag := func(i int, field string) bool {
		v, ok := parseYesNo(cell(i))
		if !ok {
			errs.Add(field, "Use Sim ou Não.")
		}
		return v
	}

	input := dtos.PieceInput{
		Denomination:           cell(colDenomination),
		TitleByAuthor:          cell(colTitleByAuthor),
		RegistryNumber:         optionalCell(colRegistryNumber),
		OrderNumber:            optionalCell(colOrderNumber),
		Status:                 choice(colStatus, models.PieceStatusChoices),
		Thesaurus:              optionalCell(colThesaurus),
		Description:            cell(colDescription),
		Dimensions:             optionalCell(colDimensions),
		MaterialTechnique:      cell(colMaterialTechnique),
		ConservationState:      choice(colConservationState, models.ConservationChoices),
		ProductionPlace:        cell(colProductionPlace),
		ProductionStartDate:    date(colProductionStart, "productionStartDate"),
		ProductionEndDate:      date(colProductionEnd, "productionEndDate"),
		CanReproduce:           flag(colCanReproduce, "canReproduce"),
		ReproductionConditions: optionalCell(colReproductionConditions),
		Typology:               choice(colTypology, models.TypologyChoices),
		AcquisitionMethod:      choice(colAcquisitionMethod, models.AcquisitionChoices),
		Published:              flag(colPublished, "published"),
	}
	return input, errs
}

// resolve fills the reference ids of input from the named columns of row,
// creating missing authors, axes and locations.
func (imp *pieceImport) resolve(input *dtos.PieceInput, row []string) ([]models.PersonModel, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	var authors []models.PersonModel
	for _, name := range splitNames(cell(colAuthors)) {
		person, err := imp.author(name)
		if err != nil {
			return nil, fmt.Errorf("autor %s: %w", name, err)
		}
		authors = append(authors, person)
	}

	if label := cell(colOrganizingAxis); label != "" {
		id, err := lookupOrCreate(imp.db, imp.axes, label, &models.OrganizingAxisModel{Label: label})
		if err != nil {
			return nil, fmt.Errorf("eixo %s: %w", label, err)
		}
		input.OrganizingAxisID = &id
	}
	if label := cell(colInternalLocation); label != "" {
		id, err := lookupOrCreate(imp.db, imp.locations, label, &models.InternalLocationModel{Label: label})
		if err != nil {
			return nil, fmt.Errorf("localização %s: %w", label, err)
		}
		input.InternalLocationID = &id
	}
	if name := cell(colExhibition); name != "" {
		id, ok := imp.exhibitions[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("exposição %s não encontrada", name)
		}
		input.ExhibitionID = &id
	}
	return authors, nil
}

func (imp *pieceImport) author(name string) (models.PersonModel, error) {
	key := strings.ToLower(name)
	if person, ok := imp.authors[key]; ok {
		return person, nil
	}
	var person models.PersonModel
	err := imp.db.Where("LOWER(name) = ?", key).Order("id").First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		person = models.PersonModel{Name: name, NaturalPerson: true, IsAuthor: true}
		err = imp.db.Create(&person).Error
	}
	if err != nil {
		return models.PersonModel{}, err
	}
	imp.authors[key] = person
	return person, nil
}

// lookupOrCreate finds a label row by case-insensitive label or creates row.
func lookupOrCreate(db *gorm.DB, cache map[string]int, label string, row interface{}) (int, error) {
	key := strings.ToLower(label)
	if id, ok := cache[key]; ok {
		return id, nil
	}
	var found struct{ ID int }
	err := db.Model(row).Select("id").Where("LOWER(label) = ?", key).Order("id").Take(&found).Error
	if err == nil {
		cache[key] = found.ID
		return found.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	if err := db.Create(row).Error; err != nil {
		return 0, err
	}
	switch v := row.(type) {
	case *models.OrganizingAxisModel:
		found.ID = v.ID
	case *models.InternalLocationModel:
		found.ID = v.ID
	}
	cache[key] = found.ID
	return found.ID, nil
}

func parseSpreadsheetDate(s string) (models.Date, error) {
	if d, err := models.ParseDate(s); err == nil {
		return d, nil
	}
	t, err := time.Parse("02/01/2006", s)
	if err != nil {
		return models.Date{}, err
	}
	return models.DateOf(t), nil
}

func parseYesNo(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "não", "nao", "n", "false", "0":
		return false, true
	case "sim", "s", "true", "1":
		return true, true
	}
	return false, false
}

func yesNo(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

func dateCell(d *models.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func splitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// describeErrors flattens validation messages into one line.
func describeErrors(errs *forms.Errors) string {
	var parts []string
	for _, field := range sortedKeys(errs.Fields) {
		parts = append(parts, field+": "+strings.Join(errs.Fields[field], " "))
	}
	parts = append(parts, errs.NonField...)
	return strings.Join(parts, "; ")
}
