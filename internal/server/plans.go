package server

import (
	"context"
	"errors"
	"strings"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	planscorepb "github.com/seojun-park/planscore/gen/proto/planscore/v1"
	"github.com/seojun-park/planscore/internal/common"
	"github.com/seojun-park/planscore/internal/entity"
	"github.com/seojun-park/planscore/internal/ingest"
	"github.com/seojun-park/planscore/internal/repository"
	"github.com/seojun-park/planscore/internal/utils"
)

// ObjectStore is the slice of the storage layer the plan endpoints need.
type ObjectStore interface {
	FetchDocument(ctx context.Context, key string) ([]byte, error)
	PresignUpload(ctx context.Context, key, contentType string) (string, error)
	DeleteDocument(ctx context.Context, key string) error
}

type PlanServer struct {
	planscorepb.UnimplementedPlansServiceServer
	plans     repository.PlanRepository
	store     ObjectStore
	inspector *ingest.Inspector
	logger    *slog.Logger
}

func NewPlanServer(plans repository.PlanRepository, store ObjectStore, inspector *ingest.Inspector, logger *slog.Logger) *PlanServer {
	return &PlanServer{
		plans:     plans,
		store:     store,
		inspector: inspector,
		logger:    logger,
	}
}

// CreateUploadURL hands the client a presigned PUT URL. The object key is
// derived from a fresh upload id, not the filename, so clients cannot
// collide with or overwrite each other's documents.
func (s *PlanServer) CreateUploadURL(ctx context.Context, req *planscorepb.CreateUploadURLRequest) (*planscorepb.CreateUploadURLResponse, error) {
	ownerID, err := parseUUIDField(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}
	filename := strings.TrimSpace(req.GetFilename())
	if filename == "" {
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return nil, status.Error(codes.InvalidArgument, "only PDF uploads are accepted")
	}
	contentType := req.GetContentType()
	if contentType == "" {
		contentType = "application/pdf"
	}

	key := ingest.ObjectKey(ownerID.String(), uuid.NewString())
	url, err := s.store.PresignUpload(ctx, key, contentType)
	if err != nil {
		s.logger.Error("presign upload failed", "owner_id", ownerID, "error", err)
		return nil, status.Error(codes.Internal, "could not create upload URL")
	}

	return &planscorepb.CreateUploadURLResponse{
		UploadUrl: url,
		ObjectKey: key,
	}, nil
}

// RegisterPlan verifies the uploaded object is a readable PDF and creates
// the plan row.
func (s *PlanServer) RegisterPlan(ctx context.Context, req *planscorepb.RegisterPlanRequest) (*planscorepb.RegisterPlanResponse, error) {
	ownerID, err := parseUUIDField(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}
	title := strings.TrimSpace(req.GetTitle())
	if title == "" {
		return nil, status.Error(codes.InvalidArgument, "title is required")
	}
	key := strings.TrimSpace(req.GetObjectKey())
	if key == "" {
		return nil, status.Error(codes.InvalidArgument, "object_key is required")
	}

	data, err := s.store.FetchDocument(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "no uploaded document at %q", key)
		}
		s.logger.Error("fetch uploaded document failed", "object_key", key, "error", err)
		return nil, status.Error(codes.Internal, "could not read uploaded document")
	}

	doc, err := s.inspector.Inspect(key, data)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, status.Errorf(codes.InvalidArgument, "document rejected: %v", err)
		}
		s.logger.Error("document inspection failed", "object_key", key, "error", err)
		return nil, status.Error(codes.Internal, "could not inspect document")
	}

	plan, err := s.plans.Create(ctx, &entity.BusinessPlan{
		OwnerID:     ownerID,
		Title:       title,
		ObjectKey:   key,
		ContentHash: &doc.SHA256Hex,
		PageCount:   doc.PageCount,
		SizeBytes:   doc.SizeBytes,
	})
	if err != nil {
		s.logger.Error("plan create failed", "owner_id", ownerID, "error", err)
		return nil, status.Error(codes.Internal, "could not register plan")
	}

	s.logger.Info("plan registered", "plan_id", plan.ID, "owner_id", ownerID, "pages", plan.PageCount)
	return &planscorepb.RegisterPlanResponse{Plan: utils.ToPBPlan(plan)}, nil
}

func (s *PlanServer) GetPlan(ctx context.Context, req *planscorepb.GetPlanRequest) (*planscorepb.GetPlanResponse, error) {
	planID, err := parseUUIDField(req.GetPlanId(), "plan_id")
	if err != nil {
		return nil, err
	}
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "plan %s not found", planID)
		}
		s.logger.Error("get plan failed", "plan_id", planID, "error", err)
		return nil, status.Error(codes.Internal, "could not load plan")
	}
	return &planscorepb.GetPlanResponse{Plan: utils.ToPBPlan(plan)}, nil
}

func (s *PlanServer) ListPlans(ctx context.Context, req *planscorepb.ListPlansRequest) (*planscorepb.ListPlansResponse, error) {
	ownerID, err := parseUUIDField(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}
	plans, err := s.plans.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("list plans failed", "owner_id", ownerID, "error", err)
		return nil, status.Error(codes.Internal, "could not list plans")
	}
	out := make([]*planscorepb.BusinessPlan, 0, len(plans))
	for _, p := range plans {
		out = append(out, utils.ToPBPlan(p))
	}
	return &planscorepb.ListPlansResponse{Plans: out}, nil
}

// DeletePlan removes the plan row and its stored document. Job and report
// rows go with the plan via the schema's ON DELETE CASCADE edges.
func (s *PlanServer) DeletePlan(ctx context.Context, req *planscorepb.DeletePlanRequest) (*planscorepb.DeletePlanResponse, error) {
	planID, err := parseUUIDField(req.GetPlanId(), "plan_id")
	if err != nil {
		return nil, err
	}
	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "plan %s not found", planID)
		}
		return nil, status.Error(codes.Internal, "could not load plan")
	}

	if err := s.plans.Delete(ctx, planID); err != nil {
		s.logger.Error("delete plan failed", "plan_id", planID, "error", err)
		return nil, status.Error(codes.Internal, "could not delete plan")
	}
	// Best effort; an orphaned object is harmless and re-deletable.
	if err := s.store.DeleteDocument(ctx, plan.ObjectKey); err != nil {
		s.logger.Warn("delete stored document failed", "plan_id", planID, "object_key", plan.ObjectKey, "error", err)
	}

	return &planscorepb.DeletePlanResponse{Deleted: true}, nil
}
