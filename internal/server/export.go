package server

import (
	"context"
	"log/slog"

	v1 "github.com/joseph-ayodele/docflow/gen/proto/docflow/v1"
	"github.com/joseph-ayodele/docflow/internal/common"
	"github.com/joseph-ayodele/docflow/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportInvoicesCsv(ctx context.Context, _ *v1.ExportInvoicesCsvRequest) (*v1.ExportInvoicesCsvResponse, error) {
	data, err := s.svc.ExportInvoicesCSV(ctx)
	if err != nil {
		s.logger.Error("export.csv.failed", "err", err)
		return nil, common.InternalError("csv export failed")
	}
	return &v1.ExportInvoicesCsvResponse{Csv: data}, nil
}

func (s *ExportServer) ExportInvoicesXlsx(ctx context.Context, _ *v1.ExportInvoicesXlsxRequest) (*v1.ExportInvoicesXlsxResponse, error) {
	data, err := s.svc.ExportInvoicesXLSX(ctx)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalError("xlsx export failed")
	}
	return &v1.ExportInvoicesXlsxResponse{Xlsx: data}, nil
}

func (s *ExportServer) ExportDocumentJson(ctx context.Context, req *v1.ExportDocumentJsonRequest) (*v1.ExportDocumentJsonResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	data, err := s.svc.ExportDocumentJSON(ctx, id)
	if err != nil {
		s.logger.Error("export.json.failed", "document_id", id, "err", err)
		return nil, common.NotFoundError("document not found")
	}
	return &v1.ExportDocumentJsonResponse{Json: data}, nil
}
