package api

import (
	"context"
	"fmt"
)

// UsersAPI wraps the /users endpoints (admin screens).
type UsersAPI struct {
	c *Client
}

// UserUpsert is the create/update payload. Nil fields are omitted so a
// partial update only touches what was set.
type UserUpsert struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Role     *string `json:"role,omitempty"`
	Active   *bool   `json:"is_active,omitempty"`
}

func (u *UsersAPI) List(ctx context.Context) ([]User, error) {
	var users []User
	if err := u.c.get(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (u *UsersAPI) Get(ctx context.Context, id int64) (User, error) {
	var user User
	if err := u.c.get(ctx, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (u *UsersAPI) Create(ctx context.Context, req UserUpsert) (User, error) {
	var user User
	if err := u.c.post(ctx, "/users", req, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (u *UsersAPI) Update(ctx context.Context, id int64, req UserUpsert) (User, error) {
	var user User
	if err := u.c.put(ctx, fmt.Sprintf("/users/%d", id), req, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (u *UsersAPI) Delete(ctx context.Context, id int64) error {
	return u.c.delete(ctx, fmt.Sprintf("/users/%d", id))
}

// ToggleStatus flips is_active on the account.
func (u *UsersAPI) ToggleStatus(ctx context.Context, id int64) (User, error) {
	var user User
	if err := u.c.patch(ctx, fmt.Sprintf("/users/%d/toggle-status", id), struct{}{}, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (u *UsersAPI) Stats(ctx context.Context) (UserStats, error) {
	var stats UserStats
	if err := u.c.get(ctx, "/users/stats/overview", nil, &stats); err != nil {
		return UserStats{}, err
	}
	return stats, nil
}
