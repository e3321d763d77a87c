package api

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/job-tracker-backend/models"
	"gorm.io/gorm"
)

// memDB backs the fake stores. Records are copied on the way in and out so
// handlers cannot mutate stored state without going through a store call.
type memDB struct {
	mu    sync.Mutex
	apps  map[uuid.UUID]models.Application
	notes map[uuid.UUID]models.ApplicationNote
	tags  map[uuid.UUID]models.Tag
	links map[uuid.UUID]models.ApplicationTag
	users map[uuid.UUID]models.User
}

func newMemDB() *memDB {
	return &memDB{
		apps:  map[uuid.UUID]models.Application{},
		notes: map[uuid.UUID]models.ApplicationNote{},
		tags:  map[uuid.UUID]models.Tag{},
		links: map[uuid.UUID]models.ApplicationTag{},
		users: map[uuid.UUID]models.User{},
	}
}

func (db *memDB) stores() stores {
	return stores{
		applications:    fakeApplications{db},
		notes:           fakeNotes{db},
		tags:            fakeTags{db},
		applicationTags: fakeApplicationTags{db},
		users:           fakeUsers{db},
	}
}

func (db *memDB) putApp(app models.Application) models.Application {
	db.mu.Lock()
	defer db.mu.Unlock()
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	db.apps[app.ID] = app
	return app
}

func (db *memDB) app(id uuid.UUID) models.Application {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.apps[id]
}

func (db *memDB) putTag(tag models.Tag) models.Tag {
	db.mu.Lock()
	defer db.mu.Unlock()
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}
	db.tags[tag.ID] = tag
	return tag
}

func (db *memDB) linkCount(appID, tagID uuid.UUID) int {
	db.mu.Lock()
	defer db.mu.Unlock()
	n := 0
	for _, l := range db.links {
		if l.ApplicationID == appID && l.TagID == tagID {
			n++
		}
	}
	return n
}

type fakeApplications struct{ db *memDB }

func (f fakeApplications) FindAllByUser(ctx context.Context, userID uuid.UUID, status models.Status) ([]*models.Application, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	out := []*models.Application{}
	for _, app := range f.db.apps {
		if app.UserID == userID && (status == "" || app.Status == status) {
			app := app
			out = append(out, &app)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DateApplied.After(out[j].DateApplied) })
	return out, nil
}

func (f fakeApplications) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*models.Application, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	app, ok := f.db.apps[id]
	if !ok || app.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &app, nil
}

func (f fakeApplications) FindUpcomingReminders(ctx context.Context, userID uuid.UUID, from time.Time) ([]*models.Application, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	out := []*models.Application{}
	for _, app := range f.db.apps {
		if app.UserID == userID && app.ReminderDate != nil && !app.ReminderDate.Before(from) && !app.IsReminderSent {
			app := app
			out = append(out, &app)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReminderDate.Before(*out[j].ReminderDate) })
	return out, nil
}

func (f fakeApplications) Add(ctx context.Context, application *models.Application) error {
	if application.ID == uuid.Nil {
		application.ID = uuid.New()
	}
	f.db.putApp(*application)
	return nil
}

func (f fakeApplications) Update(ctx context.Context, application *models.Application) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	stored, ok := f.db.apps[application.ID]
	if !ok || stored.UserID != application.UserID {
		return gorm.ErrRecordNotFound
	}
	f.db.apps[application.ID] = *application
	return nil
}

func (f fakeApplications) UpdateFields(ctx context.Context, userID, id uuid.UUID, columns map[string]interface{}) (*models.Application, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	app, ok := f.db.apps[id]
	if !ok || app.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	for column, value := range columns {
		switch column {
		case "status":
			app.Status = value.(models.Status)
		case "priority":
			app.Priority = value.(models.Priority)
		case "is_bookmarked":
			app.IsBookmarked = value.(bool)
		case "is_reminder_sent":
			app.IsReminderSent = value.(bool)
		case "last_updated":
			app.LastUpdated = value.(time.Time)
		case "reminder_date":
			t := value.(time.Time)
			app.ReminderDate = &t
		default:
			panic("fake store cannot update column " + column)
		}
	}
	f.db.apps[id] = app
	return &app, nil
}

func (f fakeApplications) UpdateStatus(ctx context.Context, userID, id uuid.UUID, status models.Status, now time.Time) (*models.Application, error) {
	return f.UpdateFields(ctx, userID, id, map[string]interface{}{"status": status, "last_updated": now})
}

func (f fakeApplications) Delete(ctx context.Context, userID, id uuid.UUID) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	app, ok := f.db.apps[id]
	if !ok || app.UserID != userID {
		return gorm.ErrRecordNotFound
	}
	delete(f.db.apps, id)
	return nil
}

type fakeNotes struct{ db *memDB }

func (f fakeNotes) FindByApplication(ctx context.Context, applicationID uuid.UUID) ([]*models.ApplicationNote, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	out := []*models.ApplicationNote{}
	for _, n := range f.db.notes {
		if n.ApplicationID == applicationID {
			n := n
			out = append(out, &n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f fakeNotes) Add(ctx context.Context, note *models.ApplicationNote) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	note.ID = uuid.New()
	note.CreatedAt = time.Now()
	f.db.notes[note.ID] = *note
	return nil
}

func (f fakeNotes) Delete(ctx context.Context, applicationID, noteID uuid.UUID) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	n, ok := f.db.notes[noteID]
	if !ok || n.ApplicationID != applicationID {
		return gorm.ErrRecordNotFound
	}
	delete(f.db.notes, noteID)
	return nil
}

type fakeTags struct{ db *memDB }

func (f fakeTags) FindAllByUser(ctx context.Context, userID uuid.UUID) ([]*models.Tag, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	out := []*models.Tag{}
	for _, t := range f.db.tags {
		if t.UserID == userID {
			t := t
			out = append(out, &t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f fakeTags) FindByIDForUser(ctx context.Context, userID, id uuid.UUID) (*models.Tag, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	t, ok := f.db.tags[id]
	if !ok || t.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (f fakeTags) FindByName(ctx context.Context, userID uuid.UUID, name string) (*models.Tag, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, t := range f.db.tags {
		if t.UserID == userID && t.Name == name {
			return &t, nil
		}
	}
	return nil, nil
}

func (f fakeTags) Add(ctx context.Context, tag *models.Tag) error {
	stored := f.db.putTag(*tag)
	tag.ID = stored.ID
	return nil
}

type fakeApplicationTags struct{ db *memDB }

func (f fakeApplicationTags) FindTagsByApplication(ctx context.Context, applicationID uuid.UUID) ([]*models.Tag, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	out := []*models.Tag{}
	for _, l := range f.db.links {
		if l.ApplicationID == applicationID {
			t := f.db.tags[l.TagID]
			out = append(out, &t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f fakeApplicationTags) Exists(ctx context.Context, applicationID, tagID uuid.UUID) (bool, error) {
	return f.db.linkCount(applicationID, tagID) > 0, nil
}

func (f fakeApplicationTags) Add(ctx context.Context, link *models.ApplicationTag) error {
	if f.db.linkCount(link.ApplicationID, link.TagID) > 0 {
		return gorm.ErrDuplicatedKey
	}
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	link.ID = uuid.New()
	f.db.links[link.ID] = *link
	return nil
}

func (f fakeApplicationTags) Delete(ctx context.Context, applicationID, tagID uuid.UUID) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for id, l := range f.db.links {
		if l.ApplicationID == applicationID && l.TagID == tagID {
			delete(f.db.links, id)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeUsers struct{ db *memDB }

func (f fakeUsers) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	u, ok := f.db.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (f fakeUsers) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, u := range f.db.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (f fakeUsers) Add(ctx context.Context, user *models.User) error {
	f.db.mu.Lock()
	defer f.db.mu.Unlock()
	for _, u := range f.db.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	f.db.users[user.ID] = *user
	return nil
}
