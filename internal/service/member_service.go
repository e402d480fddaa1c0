package service

import (
	"context"

	"roadmap-dashboard-api/internal/aggregate"
	"roadmap-dashboard-api/internal/domain"
	"roadmap-dashboard-api/internal/dto"
	"roadmap-dashboard-api/internal/repository"
	"roadmap-dashboard-api/internal/store"
)

// MemberService defines the interface for member business logic
type MemberService interface {
	ListMembers(ctx context.Context, query dto.MemberListQuery) ([]dto.MemberResponse, error)
	GetMember(ctx context.Context, id uint) (*dto.MemberResponse, error)
	CreateMember(ctx context.Context, req *dto.CreateMemberRequest) (*dto.MemberResponse, error)
	UpdateMember(ctx context.Context, id uint, req *dto.UpdateMemberRequest) (*dto.MemberResponse, error)
	DeleteMember(ctx context.Context, id uint) error
	GetMemberSummary(ctx context.Context, year int) (*dto.MemberSummaryResponse, error)
}

type memberServiceImpl struct {
	planning   *Planning
	memberRepo repository.MemberRepository
}

// NewMemberService creates a new instance of MemberService
func NewMemberService(planning *Planning, memberRepo repository.MemberRepository) MemberService {
	return &memberServiceImpl{planning: planning, memberRepo: memberRepo}
}

func (s *memberServiceImpl) ListMembers(ctx context.Context, query dto.MemberListQuery) ([]dto.MemberResponse, error) {
	filter := store.MemberFilter{
		Type: domain.MemberType(query.Type),
		Role: query.Role,
		Team: query.Team,
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, validationError(domain.ValidationError("type", "unknown member type %q", query.Type))
	}
	snap, err := s.planning.scope(ctx, query.Year)
	if err != nil {
		return nil, err
	}
	return dto.ToMemberResponses(snap.ListMembers(filter)), nil
}

func (s *memberServiceImpl) GetMember(ctx context.Context, id uint) (*dto.MemberResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapError(err, "Failed to fetch member")
	}
	resp := dto.ToMemberResponse(*member)
	return &resp, nil
}

func (s *memberServiceImpl) CreateMember(ctx context.Context, req *dto.CreateMemberRequest) (*dto.MemberResponse, error) {
	memberType := domain.MemberType(req.Type)
	if !memberType.Valid() {
		return nil, validationError(domain.ValidationError("type", "unknown member type %q", req.Type))
	}
	joinDate, err := parseOptionalDate(req.JoinDate)
	if err != nil {
		return nil, validationError(err)
	}

	member := &domain.Member{
		Name:     req.Name,
		Role:     req.Role,
		Team:     req.Team,
		Product:  req.Product,
		Type:     memberType,
		Year:     req.Year,
		JoinDate: joinDate,
	}
	if err := s.planning.commit(ctx, func(ctx context.Context) error {
		return s.memberRepo.Create(ctx, member)
	}, "Failed to create member"); err != nil {
		return nil, err
	}

	resp := dto.ToMemberResponse(*member)
	return &resp, nil
}

func (s *memberServiceImpl) UpdateMember(ctx context.Context, id uint, req *dto.UpdateMemberRequest) (*dto.MemberResponse, error) {
	if req.Type != nil && !domain.MemberType(*req.Type).Valid() {
		return nil, validationError(domain.ValidationError("type", "unknown member type %q", *req.Type))
	}

	f := fields{}
	f.setString("name", req.Name)
	f.setString("role", req.Role)
	f.setString("team", req.Team)
	f.setString("product", req.Product)
	f.setString("type", req.Type)
	f.setInt("year", req.Year)
	if _, err := f.setDate("join_date", req.JoinDate, nil); err != nil {
		return nil, validationError(err)
	}

	if err := s.planning.apply(ctx, domain.Mutation{Kind: domain.KindMember, ID: id, Fields: f}, "Failed to update member"); err != nil {
		return nil, err
	}
	return s.GetMember(ctx, id)
}

// DeleteMember removes a member; their tasks become unassigned
func (s *memberServiceImpl) DeleteMember(ctx context.Context, id uint) error {
	return s.planning.commit(ctx, func(ctx context.Context) error {
		return s.memberRepo.Delete(ctx, id)
	}, "Failed to delete member")
}

// GetMemberSummary aggregates the staffing of a year
func (s *memberServiceImpl) GetMemberSummary(ctx context.Context, year int) (*dto.MemberSummaryResponse, error) {
	snap, err := s.planning.scope(ctx, year)
	if err != nil {
		return nil, err
	}
	return &dto.MemberSummaryResponse{
		Year:          snap.Year(),
		MemberSummary: aggregate.SummarizeMembers(snap.Members()),
	}, nil
}
