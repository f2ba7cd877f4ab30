package server

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	planscorepb "github.com/seojun-park/planscore/gen/proto/planscore/v1"
	"github.com/seojun-park/planscore/internal/export"
)

type ExportServer struct {
	planscorepb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportEvaluations(ctx context.Context, req *planscorepb.ExportEvaluationsRequest) (*planscorepb.ExportEvaluationsResponse, error) {
	planID, err := parseUUIDField(req.GetPlanId(), "plan_id")
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportEvaluationsXLSX(ctx, planID)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "plan_id", planID, "err", err)
		return nil, status.Error(codes.Internal, "could not export evaluations")
	}

	return &planscorepb.ExportEvaluationsResponse{Xlsx: xlsx}, nil
}
