package handlers

import (
	"github.com/tgrullon/social_network_api/internal/models"
)

// Response projections. The password hash never appears in any of them.

type userResource struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Age       int    `json:"age"`
}

func newUserResource(u *models.User) userResource {
	return userResource{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
		Telephone: u.Telephone,
		Age:       u.Age,
	}
}

func newUserResources(users []models.User) []userResource {
	out := make([]userResource, 0, len(users))
	for i := range users {
		out = append(out, newUserResource(&users[i]))
	}
	return out
}

type friendshipResource struct {
	ID       uint   `json:"id"`
	SourceID uint   `json:"source_id"`
	TargetID uint   `json:"target_id"`
	Type     string `json:"type"`
	Status   string `json:"status"`
}

func newFriendshipResource(f *models.Friendship) friendshipResource {
	return friendshipResource{
		ID:       f.ID,
		SourceID: f.SourceID,
		TargetID: f.TargetID,
		Type:     f.Type,
		Status:   f.Status,
	}
}

type friendshipResourceFull struct {
	ID           uint          `json:"id"`
	Type         string        `json:"type"`
	Status       string        `json:"status"`
	SourceFriend *userResource `json:"source_friend"`
	TargetFriend *userResource `json:"target_friend"`
}

func newFriendshipResourceFull(f *models.Friendship) friendshipResourceFull {
	full := friendshipResourceFull{
		ID:     f.ID,
		Type:   f.Type,
		Status: f.Status,
	}
	if f.Source != nil {
		src := newUserResource(f.Source)
		full.SourceFriend = &src
	}
	if f.Target != nil {
		tgt := newUserResource(f.Target)
		full.TargetFriend = &tgt
	}
	return full
}

type postResourceFull struct {
	ID       uint             `json:"id"`
	Title    string           `json:"title"`
	Content  string           `json:"content"`
	User     *userResource    `json:"user"`
	Comments []models.Comment `json:"comments"`
}

func newPostResourceFull(p *models.Post) postResourceFull {
	full := postResourceFull{
		ID:       p.ID,
		Title:    p.Title,
		Content:  p.Content,
		Comments: p.Comments,
	}
	if full.Comments == nil {
		full.Comments = []models.Comment{}
	}
	if p.User != nil {
		owner := newUserResource(p.User)
		full.User = &owner
	}
	return full
}

type commentResourceFull struct {
	ID      uint          `json:"id"`
	Comment string        `json:"comment"`
	User    *userResource `json:"user"`
	Post    *models.Post  `json:"post"`
}

func newCommentResourceFull(cm *models.Comment) commentResourceFull {
	full := commentResourceFull{
		ID:      cm.ID,
		Comment: cm.Comment,
		Post:    cm.Post,
	}
	if cm.User != nil {
		author := newUserResource(cm.User)
		full.User = &author
	}
	return full
}
