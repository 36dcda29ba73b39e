package service

import (
	"context"
	"errors"

	"github.com/tgrullon/social_network_api/internal/logging"
	"github.com/tgrullon/social_network_api/internal/models"
	"github.com/tgrullon/social_network_api/internal/repo"
)

// StatusNew is the only status the system ever writes. Other values are
// accepted as input on update but no enum is enforced.
const StatusNew = "New"

var ErrTargetNotFound = errors.New("target user not found")

type FriendshipService struct {
	Friendships *repo.FriendshipRepo
	Users       *repo.UserRepo
}

type FriendshipInput struct {
	TargetID uint
	Type     string
}

// forceRequestDefaults is the single place where friendship writes get
// their forced fields: source is always the caller and status always
// goes back to "New", also on updates of an already answered request.
func forceRequestDefaults(edge *models.Friendship, callerID uint) {
	edge.SourceID = callerID
	edge.Status = StatusNew
}

// authorizeMutation is where an ownership policy would hook in. Right
// now any authenticated caller may touch any edge.
func (s *FriendshipService) authorizeMutation(callerID uint, edge *models.Friendship) error {
	_ = callerID
	_ = edge
	return nil
}

func (s *FriendshipService) List(ctx context.Context) ([]models.Friendship, error) {
	return s.Friendships.All(ctx)
}

func (s *FriendshipService) Create(ctx context.Context, callerID uint, in FriendshipInput) (*models.Friendship, error) {
	l := logging.FromContext(ctx).With("svc", "friendship.create", "caller_id", callerID)

	exists, err := s.Users.Exists(ctx, in.TargetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		l.Warn("create_rejected", "reason", "unknown target", "target_id", in.TargetID)
		return nil, ErrTargetNotFound
	}

	edge := models.Friendship{
		TargetID: in.TargetID,
		Type:     in.Type,
	}
	forceRequestDefaults(&edge, callerID)

	if err := s.Friendships.Create(ctx, &edge); err != nil {
		return nil, err
	}
	return &edge, nil
}

func (s *FriendshipService) Get(ctx context.Context, id uint) (*models.Friendship, error) {
	return s.Friendships.ByIDWithUsers(ctx, id)
}

func (s *FriendshipService) Update(ctx context.Context, callerID, id uint, in FriendshipInput) (*models.Friendship, error) {
	edge, err := s.Friendships.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeMutation(callerID, edge); err != nil {
		return nil, err
	}

	if in.TargetID != 0 {
		edge.TargetID = in.TargetID
	}
	if in.Type != "" {
		edge.Type = in.Type
	}
	forceRequestDefaults(edge, callerID)

	if err := s.Friendships.Save(ctx, edge); err != nil {
		return nil, err
	}
	return edge, nil
}

func (s *FriendshipService) Delete(ctx context.Context, callerID, id uint) error {
	edge, err := s.Friendships.ByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeMutation(callerID, edge); err != nil {
		return err
	}
	return s.Friendships.Delete(ctx, edge.ID)
}
