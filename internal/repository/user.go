package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gatherly/api/internal/database"
	"github.com/gatherly/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			name: $name,
			username: $username,
			email: $email,
			password_hash: $hash,
			is_admin: $is_admin,
			created_at: time::now()
		}
	`

	vars := map[string]interface{}{
		"name":     user.Name,
		"username": user.Username,
		"email":    user.Email,
		"hash":     user.Hash,
		"is_admin": user.IsAdmin,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}

	records := unwrapRecords(result)
	if len(records) == 0 {
		return errors.New("no result returned")
	}
	created := parseUser(records[0])
	user.ID = created.ID
	user.CreatedAt = created.CreatedAt
	return nil
}

// GetByID retrieves a user by ID. Returns nil if the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := unwrapRecord(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return parseUser(data), nil
}

// GetByEmail retrieves a user by email. Returns nil if no account matches.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := unwrapRecord(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return parseUser(data), nil
}

// GetByIDs retrieves multiple users keyed by their record ids
func (r *UserRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*model.User, error) {
	users := make(map[string]*model.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	records := make([]interface{}, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			records = append(records, id)
		}
	}

	query := `SELECT * FROM user WHERE type::string(id) IN $ids`
	vars := map[string]interface{}{"ids": records}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	for _, data := range unwrapRecords(result) {
		user := parseUser(data)
		users[user.ID] = user
	}
	return users, nil
}

// Count returns the number of user accounts
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT count() AS count FROM user GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return extractCount(result), nil
}

func parseUser(data map[string]interface{}) *model.User {
	return &model.User{
		ID:        getRecordID(data, "id"),
		Name:      getString(data, "name"),
		Username:  getString(data, "username"),
		Email:     getString(data, "email"),
		Hash:      getString(data, "password_hash"),
		IsAdmin:   getBool(data, "is_admin"),
		CreatedAt: getTime(data, "created_at"),
	}
}
