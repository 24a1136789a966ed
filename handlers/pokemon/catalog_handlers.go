package pokemon

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pokedex/models"
	"pokedex/services"
	"pokedex/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Pokemons"

// ExportExcel downloads the whole catalog as a spreadsheet
// @Summary Export the catalog
// @Description Download every Pokemon as an XLSX file ordered by no
// @Tags Catalog
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} map[string]string
// @Router /catalog/export [get]
func (h *Handler) ExportExcel(c *gin.Context) {
	pokemons, err := h.pokemons.ListAll(c.Request.Context())
	if err != nil {
		response.ServiceError(c, h.log, err)
		return
	}

	f, err := BuildWorkbook(pokemons)
	if err != nil {
		h.log.WithError(err).Error("failed to build export workbook")
		response.Error(c, http.StatusInternalServerError, ErrExportFailed)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("pokedex_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+filename)
	if err := f.Write(c.Writer); err != nil {
		h.log.WithError(err).Error("failed to write export workbook")
	}
}

// BuildWorkbook writes pokemons to a single sheet with an ID, Name, No header
func BuildWorkbook(pokemons []models.Pokemon) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	headers := []interface{}{"ID", "Name", "No"}
	if err := f.SetSheetRow(exportSheet, "A1", &headers); err != nil {
		return nil, err
	}

	for i, p := range pokemons {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{p.ID, p.Name, p.No}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		f.SetCellStyle(exportSheet, "A1", "C1", style)
	}
	f.SetColWidth(exportSheet, "A", "A", 40)
	f.SetColWidth(exportSheet, "B", "B", 20)

	return f, nil
}

// ImportExcel creates a pokemon for every row of an uploaded spreadsheet
// @Summary Import pokemons from a spreadsheet
// @Description Create one Pokemon per row of every sheet having Name and No columns
// @Tags Catalog
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "XLSX file"
// @Success 200 {object} ImportResponse
// @Failure 400 {object} map[string]string
// @Router /catalog/import [post]
func (h *Handler) ImportExcel(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrMissingFile)
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidFile+": "+err.Error())
		return
	}
	defer openedFile.Close()

	xlsx, err := excelize.OpenReader(openedFile)
	if err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidFile+": "+err.Error())
		return
	}
	defer xlsx.Close()

	result := ImportResponse{Created: []models.Pokemon{}, Errors: []ImportRowError{}}
	columnsFound := false

	for _, sheetName := range xlsx.GetSheetList() {
		rows, err := xlsx.GetRows(sheetName)
		if err != nil {
			response.Error(c, http.StatusBadRequest, ErrInvalidFile+": "+err.Error())
			return
		}
		if len(rows) < 2 { // At least header and one data row
			continue
		}

		nameIdx, noIdx := -1, -1
		for i, cell := range rows[0] {
			switch strings.ToLower(strings.TrimSpace(cell)) {
			case "name", "nom", "nombre":
				nameIdx = i
			case "no", "number", "numero", "número":
				noIdx = i
			}
		}
		if nameIdx == -1 || noIdx == -1 {
			continue
		}
		columnsFound = true

		for i := 1; i < len(rows); i++ {
			row := rows[i]
			if len(row) <= max(nameIdx, noIdx) || strings.TrimSpace(row[nameIdx]) == "" {
				continue
			}

			no, err := strconv.Atoi(strings.TrimSpace(row[noIdx]))
			if err != nil {
				result.Errors = append(result.Errors, ImportRowError{Row: i + 1, Error: "no must be an integer"})
				continue
			}

			pokemon, err := h.pokemons.Create(c.Request.Context(), services.CreatePokemonInput{
				Name: row[nameIdx],
				No:   no,
			})
			if err != nil {
				result.Errors = append(result.Errors, ImportRowError{Row: i + 1, Error: err.Error()})
				continue
			}
			result.Created = append(result.Created, *pokemon)
		}
	}

	if !columnsFound {
		response.Error(c, http.StatusBadRequest, ErrMissingColumns)
		return
	}

	c.JSON(http.StatusOK, result)
}
