package router

import (
	"context"
	"strings"
	"sync"

	"github.com/biosecret/go-tasks/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUsers struct {
	mu         sync.Mutex
	users      map[string]*models.User
	err        error
	lastFilter bson.M
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]*models.User{}}
}

func (f *fakeUsers) add(u models.User) models.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.users[u.ID.Hex()] = &u
	return u
}

func (f *fakeUsers) FindByName(_ context.Context, name string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Name == name {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) NameExists(ctx context.Context, name string) (bool, error) {
	u, err := f.FindByName(ctx, name)
	return u != nil, err
}

func (f *fakeUsers) Exists(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUsers) Insert(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	user.ID = primitive.NewObjectID()
	cp := *user
	f.users[user.ID.Hex()] = &cp
	return nil
}

func (f *fakeUsers) Find(_ context.Context, filter bson.M) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	out := []models.User{}
	for _, u := range f.users {
		cp := *u
		cp.Password = ""
		out = append(out, cp)
	}
	return out, nil
}

func (f *fakeUsers) Update(_ context.Context, id string, set bson.M) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	if v, ok := set["adminPrivileges"].(bool); ok {
		u.AdminPrivileges = v
	}
	if v, ok := set["password"].(string); ok {
		u.Password = v
	}
	cp := *u
	cp.Password = ""
	return &cp, nil
}

func (f *fakeUsers) Delete(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	delete(f.users, id)
	return u, nil
}

type fakeTasks struct {
	mu         sync.Mutex
	tasks      []*models.Task
	err        error
	lastFilter bson.M
}

func (f *fakeTasks) add(t models.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t.ID.IsZero() {
		t.ID = primitive.NewObjectID()
	}
	f.tasks = append(f.tasks, &t)
}

func (f *fakeTasks) Insert(_ context.Context, task *models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	task.ID = primitive.NewObjectID()
	cp := *task
	f.tasks = append(f.tasks, &cp)
	return nil
}

// Find chỉ áp dụng điều kiện userId, các điều kiện khác được ghi lại để kiểm tra
func (f *fakeTasks) Find(_ context.Context, filter bson.M) ([]models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Task{}
	for _, t := range f.tasks {
		if uid, ok := filter["userId"].(string); ok && !strings.EqualFold(uid, t.UserID) {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTasks) Update(_ context.Context, id, userID string, set bson.M) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.tasks {
		if t.ID.Hex() != id || t.UserID != userID {
			continue
		}
		for k, v := range set {
			switch k {
			case "title":
				t.Title = v.(string)
			case "description":
				t.Description = v.(string)
			case "endDate":
				t.EndDate = v.(string)
			case "updateDate":
				t.UpdateDate = v.(string)
			case "notes":
				t.Notes = v.([]models.Note)
			case "tags":
				t.Tags = v.([]models.Tag)
			}
		}
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeTasks) Delete(_ context.Context, id string) (*models.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for i, t := range f.tasks {
		if t.ID.Hex() == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return t, nil
		}
	}
	return nil, nil
}

type fakeLookups struct {
	err error
}

func (f *fakeLookups) FindStatus(_ context.Context, code float64) (*models.Status, error) {
	if f.err != nil {
		return nil, f.err
	}
	titles := map[float64]string{1: "To Do", 2: "In Progress", 3: "Done"}
	title, ok := titles[code]
	if !ok {
		return nil, nil
	}
	return &models.Status{Code: int(code), Title: title}, nil
}

func (f *fakeLookups) FindPriority(_ context.Context, level float64) (*models.Priority, error) {
	if f.err != nil {
		return nil, f.err
	}
	titles := map[float64]string{0: "High", 1: "Medium", 2: "Low"}
	title, ok := titles[level]
	if !ok {
		return nil, nil
	}
	return &models.Priority{Level: int(level), Title: title}, nil
}
