package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/execsec/backoffice/internal/domain"
)

// ExportColumn maps a selectable column key to its spreadsheet header and
// value extractor.
type ExportColumn struct {
	Header string
	Value  func(p *domain.Payable) any
}

var payableColumns = map[string]ExportColumn{
	"descricao": {
		Header: "Descrição",
		Value:  func(p *domain.Payable) any { return p.Description },
	},
	"devedor": {
		Header: "Devedor",
		Value:  func(p *domain.Payable) any { return p.Debtor },
	},
	"credor": {
		Header: "Credor",
		Value:  func(p *domain.Payable) any { return p.Creditor },
	},
	"tipo_cobranca": {
		Header: "Tipo de Cobrança",
		Value:  func(p *domain.Payable) any { return p.BillingType },
	},
	"tipo_pagamento": {
		Header: "Tipo de Pagamento",
		Value:  func(p *domain.Payable) any { return string(p.PaymentType) },
	},
	"parcelas": {
		Header: "Parcelas",
		Value:  func(p *domain.Payable) any { return p.InstallmentCount() },
	},
	"valor_original": {
		Header: "Valor Original",
		Value:  func(p *domain.Payable) any { return decimalCell(p.OriginalAmount) },
	},
	"valor_final": {
		Header: "Valor Final",
		Value:  func(p *domain.Payable) any { return decimalCell(p.FinalAmount) },
	},
	"status_pagamento": {
		Header: "Status Pagamento",
		Value:  func(p *domain.Payable) any { return p.PaymentStatus },
	},
	"vencimento": {
		Header: "Vencimento",
		Value: func(p *domain.Payable) any {
			if p.DueDate == nil {
				return ""
			}
			return p.DueDate.Format("02/01/2006")
		},
	},
	"empresa": {
		Header: "Empresa",
		Value:  func(p *domain.Payable) any { return p.Company },
	},
}

var defaultExportColumns = []string{
	"descricao", "devedor", "credor", "valor_final", "status_pagamento", "vencimento",
}

func decimalCell(d *decimal.Decimal) any {
	if d == nil {
		return ""
	}
	f, _ := d.Float64()
	return f
}

// ExportUseCase runs asynchronous spreadsheet exports of payables. Progress
// is tracked in the export store and streamed to the requesting user.
type ExportUseCase struct {
	payableRepo PayableRepository
	store       ExportStore
	objects     ObjectStore
	notifier    ProgressNotifier
	idGen       IDGenerator
	logger      zerolog.Logger
}

// NewExportUseCase creates a new ExportUseCase.
func NewExportUseCase(payableRepo PayableRepository, store ExportStore, objects ObjectStore, notifier ProgressNotifier, idGen IDGenerator, logger zerolog.Logger) *ExportUseCase {
	return &ExportUseCase{
		payableRepo: payableRepo,
		store:       store,
		objects:     objects,
		notifier:    notifier,
		idGen:       idGen,
		logger:      logger,
	}
}

// ExportProgressEvent is pushed to the requesting user as the job advances.
type ExportProgressEvent struct {
	ExportID string  `json:"export_id"`
	Progress float64 `json:"progress"`
	Stage    string  `json:"stage"`
	FileURL  string  `json:"file_url,omitempty"`
}

// StartPayableExport registers an export job and generates the spreadsheet
// in the background. The returned export carries the job ID clients poll or
// subscribe with.
func (uc *ExportUseCase) StartPayableExport(ctx context.Context, tenantID, userID int64, selected []string, filter domain.PayableFilter) (*domain.Export, error) {
	if len(selected) == 0 {
		selected = defaultExportColumns
	}
	cols := make([]ExportColumn, 0, len(selected))
	for _, key := range selected {
		if col, ok := payableColumns[key]; ok {
			cols = append(cols, col)
		}
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("no known columns in selection %v", selected)
	}

	export := &domain.Export{
		ID:        "exports:" + uc.idGen.Generate(),
		Type:      "payables",
		TenantID:  tenantID,
		UserID:    userID,
		Filters:   exportFiltersMap(filter, selected),
		Progress:  0,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.store.Put(ctx, export, ExportTTL); err != nil {
		return nil, err
	}

	go uc.run(context.Background(), export, cols, filter)

	return export, nil
}

// GetExport retrieves an export job. Jobs are visible only to the user who
// started them.
func (uc *ExportUseCase) GetExport(ctx context.Context, id string, userID int64) (*domain.Export, error) {
	export, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if export.UserID != userID {
		return nil, domain.ErrExportNotFound
	}
	return export, nil
}

// ListExports returns the user's still-tracked export jobs, newest first.
func (uc *ExportUseCase) ListExports(ctx context.Context, userID int64) ([]*domain.Export, error) {
	exports, err := uc.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(exports, func(i, j int) bool {
		return exports[i].CreatedAt.After(exports[j].CreatedAt)
	})
	return exports, nil
}

func (uc *ExportUseCase) run(ctx context.Context, export *domain.Export, cols []ExportColumn, filter domain.PayableFilter) {
	rows, err := uc.payableRepo.ListAll(ctx, export.TenantID)
	if err != nil {
		uc.logger.Error().Err(err).Str("export_id", export.ID).Msg("export query failed")
		return
	}
	rows = filter.Apply(rows)

	f := excelize.NewFile()
	sheet := "Contas a Pagar"
	f.SetSheetName(f.GetSheetName(0), sheet)

	for i, col := range cols {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, col.Header)
	}

	total := len(rows)
	const chunkSize = 1000
	for i, r := range rows {
		for colIdx, col := range cols {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, i+2)
			_ = f.SetCellValue(sheet, cell, col.Value(r))
		}

		if (i+1)%chunkSize == 0 || i == total-1 {
			progress := math.Round(float64(i+1) / float64(total) * 100)
			// 100% is reserved for when the download link exists.
			if progress >= 100 {
				progress = 95
			}
			uc.advance(ctx, export, progress, "generating", "")
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		uc.logger.Error().Err(err).Str("export_id", export.ID).Msg("spreadsheet write failed")
		return
	}

	key := fmt.Sprintf("exports/%d/%s.xlsx", export.TenantID, uuid.NewString())
	uc.advance(ctx, export, 95, "uploading", "")

	const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if err := uc.objects.Upload(ctx, key, buf, int64(buf.Len()), xlsxContentType); err != nil {
		uc.logger.Error().Err(err).Str("export_id", export.ID).Msg("export upload failed")
		return
	}
	url, err := uc.objects.PresignedURL(ctx, key, ExportTTL)
	if err != nil {
		uc.logger.Error().Err(err).Str("export_id", export.ID).Msg("export link failed")
		return
	}

	export.FileURL = &url
	uc.advance(ctx, export, 100, "ready", url)
}

func (uc *ExportUseCase) advance(ctx context.Context, export *domain.Export, progress float64, stage, url string) {
	export.Progress = progress
	if err := uc.store.Put(ctx, export, ExportTTL); err != nil {
		uc.logger.Warn().Err(err).Str("export_id", export.ID).Msg("export status save failed")
	}
	if uc.notifier != nil {
		uc.notifier.Notify(export.UserID, ExportProgressEvent{
			ExportID: export.ID,
			Progress: progress,
			Stage:    stage,
			FileURL:  url,
		})
	}
}

func exportFiltersMap(f domain.PayableFilter, fields []string) map[string]any {
	m := map[string]any{"fields": fields}
	if f.Debtor != "" {
		m["devedor"] = f.Debtor
	}
	if f.Status != "" {
		m["status"] = f.Status
	}
	if f.BillingType != "" {
		m["tipo_cobranca"] = f.BillingType
	}
	if f.Creditor != "" {
		m["credor"] = f.Creditor
	}
	if f.From != nil {
		m["de"] = f.From.Format("2006-01-02")
	}
	if f.To != nil {
		m["ate"] = f.To.Format("2006-01-02")
	}
	return m
}
