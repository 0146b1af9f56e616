package mocks

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/execsec/backoffice/internal/domain"
	"github.com/execsec/backoffice/internal/usecase"
)

// MockTenantRepository is a mock implementation of TenantRepository.
type MockTenantRepository struct {
	mu      sync.RWMutex
	tenants map[int64]*domain.Tenant
	nextID  int64

	CreateFunc    func(ctx context.Context, tenant *domain.Tenant) error
	GetByIDFunc   func(ctx context.Context, id int64) (*domain.Tenant, error)
	GetBySlugFunc func(ctx context.Context, slug string) (*domain.Tenant, error)
	ListFunc      func(ctx context.Context) ([]*domain.Tenant, error)
	UpdateFunc    func(ctx context.Context, tenant *domain.Tenant) error
	DeleteFunc    func(ctx context.Context, tx usecase.Transaction, id int64) error
}

func NewMockTenantRepository() *MockTenantRepository {
	return &MockTenantRepository{tenants: make(map[int64]*domain.Tenant)}
}

func (m *MockTenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tenant)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	tenant.ID = m.nextID
	m.tenants[tenant.ID] = tenant
	return nil
}

func (m *MockTenantRepository) GetByID(ctx context.Context, id int64) (*domain.Tenant, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.tenants[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTenantNotFound
}

func (m *MockTenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	if m.GetBySlugFunc != nil {
		return m.GetBySlugFunc(ctx, slug)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.tenants {
		if t.Slug == slug {
			return t, nil
		}
	}
	return nil, domain.ErrTenantNotFound
}

func (m *MockTenantRepository) List(ctx context.Context) ([]*domain.Tenant, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Tenant, 0, len(m.tenants))
	for _, t := range m.tenants {
		out = append(out, t)
	}
	return out, nil
}

func (m *MockTenantRepository) Update(ctx context.Context, tenant *domain.Tenant) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tenant)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tenants[tenant.ID]; !ok {
		return domain.ErrTenantNotFound
	}
	m.tenants[tenant.ID] = tenant
	return nil
}

func (m *MockTenantRepository) Delete(ctx context.Context, tx usecase.Transaction, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tenants[id]; !ok {
		return domain.ErrTenantNotFound
	}
	delete(m.tenants, id)
	return nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mu     sync.RWMutex
	users  map[int64]*domain.User
	nextID int64

	CreateFunc        func(ctx context.Context, user *domain.User) error
	GetByIDFunc       func(ctx context.Context, id int64) (*domain.User, error)
	GetByUsernameFunc func(ctx context.Context, tenantID int64, username string) (*domain.User, error)
	ListFunc          func(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.User, error)
	UpdateFunc        func(ctx context.Context, user *domain.User) error
	DeleteFunc        func(ctx context.Context, id int64) error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[int64]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	user.ID = m.nextID
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, tenantID int64, username string) (*domain.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, tenantID, username)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.TenantID == tenantID && u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *MockUserRepository) List(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, tenantID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.User
	for _, u := range m.users {
		if u.TenantID == tenantID {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	m.users[user.ID] = &cp
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

// MockExecutiveRepository is a mock implementation of ExecutiveRepository.
type MockExecutiveRepository struct {
	mu         sync.RWMutex
	executives map[int64]*domain.Executive
	nextID     int64

	CreateFunc         func(ctx context.Context, executive *domain.Executive) error
	GetByIDFunc        func(ctx context.Context, tenantID, id int64) (*domain.Executive, error)
	ListFunc           func(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Executive, error)
	UpdateFunc         func(ctx context.Context, executive *domain.Executive) error
	DeleteFunc         func(ctx context.Context, tenantID, id int64) error
	DeleteByTenantFunc func(ctx context.Context, tx usecase.Transaction, tenantID int64) error
}

func NewMockExecutiveRepository() *MockExecutiveRepository {
	return &MockExecutiveRepository{executives: make(map[int64]*domain.Executive)}
}

func (m *MockExecutiveRepository) Create(ctx context.Context, executive *domain.Executive) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, executive)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	executive.ID = m.nextID
	m.executives[executive.ID] = executive
	return nil
}

func (m *MockExecutiveRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Executive, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, tenantID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.executives[id]; ok && e.TenantID == tenantID {
		return e, nil
	}
	return nil, domain.ErrExecutiveNotFound
}

func (m *MockExecutiveRepository) List(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Executive, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, tenantID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Executive
	for _, e := range m.executives {
		if e.TenantID == tenantID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MockExecutiveRepository) Update(ctx context.Context, executive *domain.Executive) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, executive)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.executives[executive.ID]; !ok {
		return domain.ErrExecutiveNotFound
	}
	m.executives[executive.ID] = executive
	return nil
}

func (m *MockExecutiveRepository) Delete(ctx context.Context, tenantID, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tenantID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if e, ok := m.executives[id]; ok && e.TenantID == tenantID {
		delete(m.executives, id)
		return nil
	}
	return domain.ErrExecutiveNotFound
}

func (m *MockExecutiveRepository) DeleteByTenant(ctx context.Context, tx usecase.Transaction, tenantID int64) error {
	if m.DeleteByTenantFunc != nil {
		return m.DeleteByTenantFunc(ctx, tx, tenantID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, e := range m.executives {
		if e.TenantID == tenantID {
			delete(m.executives, id)
		}
	}
	return nil
}

// MockPayableRepository is a mock implementation of PayableRepository.
type MockPayableRepository struct {
	mu       sync.RWMutex
	payables map[int64]*domain.Payable
	nextID   int64

	CreateFunc         func(ctx context.Context, payable *domain.Payable) error
	GetByIDFunc        func(ctx context.Context, tenantID, id int64) (*domain.Payable, error)
	ListFunc           func(ctx context.Context, tenantID int64, filter domain.PayableFilter, limit, offset int) ([]*domain.Payable, error)
	ListAllFunc        func(ctx context.Context, tenantID int64) ([]*domain.Payable, error)
	UpdateFunc         func(ctx context.Context, payable *domain.Payable) error
	DeleteFunc         func(ctx context.Context, tenantID, id int64) error
	DeleteByTenantFunc func(ctx context.Context, tx usecase.Transaction, tenantID int64) error
}

func NewMockPayableRepository() *MockPayableRepository {
	return &MockPayableRepository{payables: make(map[int64]*domain.Payable)}
}

func (m *MockPayableRepository) Create(ctx context.Context, payable *domain.Payable) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payable)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	payable.ID = m.nextID
	m.payables[payable.ID] = payable
	return nil
}

func (m *MockPayableRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Payable, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, tenantID, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.payables[id]; ok && p.TenantID == tenantID {
		return p, nil
	}
	return nil, domain.ErrPayableNotFound
}

func (m *MockPayableRepository) List(ctx context.Context, tenantID int64, filter domain.PayableFilter, limit, offset int) ([]*domain.Payable, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, tenantID, filter, limit, offset)
	}
	rows, err := m.ListAll(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return filter.Apply(rows), nil
}

func (m *MockPayableRepository) ListAll(ctx context.Context, tenantID int64) ([]*domain.Payable, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx, tenantID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Payable, 0)
	for id := int64(1); id <= m.nextID; id++ {
		if p, ok := m.payables[id]; ok && p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockPayableRepository) Update(ctx context.Context, payable *domain.Payable) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, payable)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payables[payable.ID]; !ok {
		return domain.ErrPayableNotFound
	}
	m.payables[payable.ID] = payable
	return nil
}

func (m *MockPayableRepository) Delete(ctx context.Context, tenantID, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tenantID, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.payables[id]; ok && p.TenantID == tenantID {
		delete(m.payables, id)
		return nil
	}
	return domain.ErrPayableNotFound
}

func (m *MockPayableRepository) DeleteByTenant(ctx context.Context, tx usecase.Transaction, tenantID int64) error {
	if m.DeleteByTenantFunc != nil {
		return m.DeleteByTenantFunc(ctx, tx, tenantID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, p := range m.payables {
		if p.TenantID == tenantID {
			delete(m.payables, id)
		}
	}
	return nil
}

// MockTaskRepository is a mock implementation of TaskRepository.
type MockTaskRepository struct {
	mu     sync.RWMutex
	tasks  map[int64]*domain.Task
	nextID int64

	CreateFunc func(ctx context.Context, task *domain.Task) error
}

func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{tasks: make(map[int64]*domain.Task)}
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	task.ID = m.nextID
	m.tasks[task.ID] = task
	return nil
}

func (m *MockTaskRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.tasks[id]; ok && t.TenantID == tenantID {
		return t, nil
	}
	return nil, domain.ErrTaskNotFound
}

func (m *MockTaskRepository) List(ctx context.Context, tenantID int64, status domain.TaskStatus, limit, offset int) ([]*domain.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Task
	for _, t := range m.tasks {
		if t.TenantID != tenantID {
			continue
		}
		if status != "" && t.Status != status {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *MockTaskRepository) ListByMeeting(ctx context.Context, tenantID, meetingID int64) ([]*domain.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Task
	for _, t := range m.tasks {
		if t.TenantID == tenantID && t.MeetingID != nil && *t.MeetingID == meetingID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, tenantID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tasks[id]; ok && t.TenantID == tenantID {
		delete(m.tasks, id)
		return nil
	}
	return domain.ErrTaskNotFound
}

// MockMeetingRepository is a mock implementation of MeetingRepository.
type MockMeetingRepository struct {
	mu       sync.RWMutex
	meetings map[int64]*domain.Meeting
	nextID   int64

	CreateFunc func(ctx context.Context, meeting *domain.Meeting) error
}

func NewMockMeetingRepository() *MockMeetingRepository {
	return &MockMeetingRepository{meetings: make(map[int64]*domain.Meeting)}
}

func (m *MockMeetingRepository) Create(ctx context.Context, meeting *domain.Meeting) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, meeting)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	meeting.ID = m.nextID
	m.meetings[meeting.ID] = meeting
	return nil
}

func (m *MockMeetingRepository) GetByID(ctx context.Context, tenantID, id int64) (*domain.Meeting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if mt, ok := m.meetings[id]; ok && mt.TenantID == tenantID {
		return mt, nil
	}
	return nil, domain.ErrMeetingNotFound
}

func (m *MockMeetingRepository) List(ctx context.Context, tenantID int64, from, to *time.Time, limit, offset int) ([]*domain.Meeting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Meeting
	for _, mt := range m.meetings {
		if mt.TenantID != tenantID {
			continue
		}
		if from != nil && mt.StartTime.Before(*from) {
			continue
		}
		if to != nil && mt.StartTime.After(*to) {
			continue
		}
		out = append(out, mt)
	}
	return out, nil
}

func (m *MockMeetingRepository) Update(ctx context.Context, meeting *domain.Meeting) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.meetings[meeting.ID]; !ok {
		return domain.ErrMeetingNotFound
	}
	m.meetings[meeting.ID] = meeting
	return nil
}

func (m *MockMeetingRepository) Delete(ctx context.Context, tenantID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mt, ok := m.meetings[id]; ok && mt.TenantID == tenantID {
		delete(m.meetings, id)
		return nil
	}
	return domain.ErrMeetingNotFound
}

// MockPersonStore is an in-memory PersonStore.
type MockPersonStore struct {
	mu      sync.RWMutex
	persons map[string]*domain.Person

	PutFunc func(ctx context.Context, person *domain.Person) error
}

func NewMockPersonStore() *MockPersonStore {
	return &MockPersonStore{persons: make(map[string]*domain.Person)}
}

func personKey(tenantID int64, kind domain.PersonKind, id string) string {
	return fmt.Sprintf("%d:%s:%s", tenantID, kind, id)
}

func (m *MockPersonStore) Put(ctx context.Context, person *domain.Person) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, person)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.persons[personKey(person.TenantID, person.Kind, person.ID)] = person
	return nil
}

func (m *MockPersonStore) Get(ctx context.Context, tenantID int64, kind domain.PersonKind, id string) (*domain.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.persons[personKey(tenantID, kind, id)]; ok {
		return p, nil
	}
	return nil, domain.ErrPersonNotFound
}

func (m *MockPersonStore) List(ctx context.Context, tenantID int64, kind domain.PersonKind) ([]*domain.Person, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	prefix := fmt.Sprintf("%d:%s:", tenantID, kind)
	var out []*domain.Person
	for k, p := range m.persons {
		if strings.HasPrefix(k, prefix) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockPersonStore) Delete(ctx context.Context, tenantID int64, kind domain.PersonKind, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := personKey(tenantID, kind, id)
	if _, ok := m.persons[key]; !ok {
		return domain.ErrPersonNotFound
	}
	delete(m.persons, key)
	return nil
}

// MockExportStore is an in-memory ExportStore.
type MockExportStore struct {
	mu      sync.RWMutex
	exports map[string]*domain.Export

	PutFunc func(ctx context.Context, export *domain.Export, ttl time.Duration) error
}

func NewMockExportStore() *MockExportStore {
	return &MockExportStore{exports: make(map[string]*domain.Export)}
}

func (m *MockExportStore) Put(ctx context.Context, export *domain.Export, ttl time.Duration) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, export, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *export
	m.exports[export.ID] = &cp
	return nil
}

func (m *MockExportStore) Get(ctx context.Context, id string) (*domain.Export, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.exports[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, domain.ErrExportNotFound
}

func (m *MockExportStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Export, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Export
	for _, e := range m.exports {
		if e.UserID == userID {
			cp := *e
			result = append(result, &cp)
		}
	}
	return result, nil
}

// MockObjectStore is an in-memory ObjectStore.
type MockObjectStore struct {
	mu      sync.RWMutex
	objects map[string][]byte

	UploadFunc       func(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PresignedURLFunc func(ctx context.Context, key string, expiry time.Duration) (string, error)
}

func NewMockObjectStore() *MockObjectStore {
	return &MockObjectStore{objects: make(map[string][]byte)}
}

func (m *MockObjectStore) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, key, r, size, contentType)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return nil
}

func (m *MockObjectStore) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if data, ok := m.objects[key]; ok {
		return io.NopCloser(strings.NewReader(string(data))), nil
	}
	return nil, domain.ErrDocumentNotFound
}

func (m *MockObjectStore) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	if m.PresignedURLFunc != nil {
		return m.PresignedURLFunc(ctx, key, expiry)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.objects[key]; !ok {
		return "", domain.ErrDocumentNotFound
	}
	return "https://storage.test/" + key, nil
}

func (m *MockObjectStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// Contents returns a stored object for assertions.
func (m *MockObjectStore) Contents(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[key]
	return data, ok
}

// MockNotificationRepository is an in-memory NotificationRepository.
type MockNotificationRepository struct {
	mu            sync.RWMutex
	notifications map[string]*domain.Notification

	CreateFunc func(ctx context.Context, n *domain.Notification) error
}

func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{notifications: make(map[string]*domain.Notification)}
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *n
	m.notifications[n.ID] = &cp
	return nil
}

func (m *MockNotificationRepository) GetByID(ctx context.Context, tenantID int64, id string) (*domain.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if n, ok := m.notifications[id]; ok && n.TenantID == tenantID {
		cp := *n
		return &cp, nil
	}
	return nil, domain.ErrNotificationNotFound
}

func (m *MockNotificationRepository) List(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Notification, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Notification
	for _, n := range m.notifications {
		if n.TenantID == tenantID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *MockNotificationRepository) UpdateStatus(ctx context.Context, id string, status domain.NotificationStatus, errMsg string, sentAt *time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notifications[id]
	if !ok {
		return domain.ErrNotificationNotFound
	}
	n.Status = status
	n.Error = errMsg
	n.SentAt = sentAt
	return nil
}

// MockMailer records sent mail.
type MockMailer struct {
	mu   sync.Mutex
	Sent []SentMail

	SendFunc func(ctx context.Context, to, subject, body string) error
}

type SentMail struct {
	To      string
	Subject string
	Body    string
}

func (m *MockMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, body)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

// MockProgressNotifier records pushed events.
type MockProgressNotifier struct {
	mu     sync.Mutex
	Events []any
}

func (m *MockProgressNotifier) Notify(userID int64, event any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
}

// MockTokenIssuer issues predictable tokens.
type MockTokenIssuer struct {
	IssueFunc func(user *domain.User, tenant *domain.Tenant) (string, time.Time, error)
}

func (m *MockTokenIssuer) Issue(user *domain.User, tenant *domain.Tenant) (string, time.Time, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(user, tenant)
	}
	return fmt.Sprintf("token-%d-%s", user.ID, tenant.Slug), time.Now().Add(time.Hour), nil
}

// MockTransaction is a no-op Transaction recording its outcome.
type MockTransaction struct {
	Committed  bool
	RolledBack bool

	CommitFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager hands out MockTransactions.
type MockTransactionManager struct {
	mu   sync.Mutex
	Last *MockTransaction

	BeginFunc             func(ctx context.Context) (usecase.Transaction, error)
	WithinTransactionFunc func(ctx context.Context, fn func(tx usecase.Transaction) error) error
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Last = &MockTransaction{}
	return m.Last, nil
}

func (m *MockTransactionManager) WithinTransaction(ctx context.Context, fn func(tx usecase.Transaction) error) error {
	if m.WithinTransactionFunc != nil {
		return m.WithinTransactionFunc(ctx, fn)
	}
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// MockIDGenerator returns sequential IDs.
type MockIDGenerator struct {
	mu sync.Mutex
	n  int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.n++
	return fmt.Sprintf("id-%04d", m.n)
}

// MockCache is an in-memory Cache. TTLs are recorded but not enforced.
type MockCache struct {
	mu     sync.RWMutex
	values map[string][]byte

	GetFunc func(ctx context.Context, key string) ([]byte, error)
	SetFunc func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return nil, nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// MockCatalogRepository is an in-memory CatalogRepository.
type MockCatalogRepository struct {
	mu            sync.RWMutex
	nextID        int64
	departments   map[int64]*domain.Department
	jobRoles      map[int64]*domain.JobRole
	collaborators map[int64]*domain.Collaborator
	assets        map[int64]*domain.Asset
	costCenters   map[int64]*domain.CostCenter
}

func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{
		departments:   make(map[int64]*domain.Department),
		jobRoles:      make(map[int64]*domain.JobRole),
		collaborators: make(map[int64]*domain.Collaborator),
		assets:        make(map[int64]*domain.Asset),
		costCenters:   make(map[int64]*domain.CostCenter),
	}
}

func (m *MockCatalogRepository) nextSeq() int64 {
	m.nextID++
	return m.nextID
}

func (m *MockCatalogRepository) CreateDepartment(ctx context.Context, d *domain.Department) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d.ID = m.nextSeq()
	m.departments[d.ID] = d
	return nil
}

func (m *MockCatalogRepository) ListDepartments(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Department, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Department
	for _, d := range m.departments {
		if d.TenantID == tenantID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *MockCatalogRepository) DeleteDepartment(ctx context.Context, tenantID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d, ok := m.departments[id]; ok && d.TenantID == tenantID {
		delete(m.departments, id)
		return nil
	}
	return domain.ErrCatalogItemNotFound
}

func (m *MockCatalogRepository) CreateJobRole(ctx context.Context, r *domain.JobRole) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = m.nextSeq()
	m.jobRoles[r.ID] = r
	return nil
}

func (m *MockCatalogRepository) ListJobRoles(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.JobRole, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.JobRole
	for _, r := range m.jobRoles {
		if r.TenantID == tenantID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockCatalogRepository) DeleteJobRole(ctx context.Context, tenantID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.jobRoles[id]; ok && r.TenantID == tenantID {
		delete(m.jobRoles, id)
		return nil
	}
	return domain.ErrCatalogItemNotFound
}

func (m *MockCatalogRepository) CreateCollaborator(ctx context.Context, c *domain.Collaborator) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.nextSeq()
	m.collaborators[c.ID] = c
	return nil
}

func (m *MockCatalogRepository) ListCollaborators(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Collaborator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Collaborator
	for _, c := range m.collaborators {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockCatalogRepository) DeleteCollaborator(ctx context.Context, tenantID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.collaborators[id]; ok && c.TenantID == tenantID {
		delete(m.collaborators, id)
		return nil
	}
	return domain.ErrCatalogItemNotFound
}

func (m *MockCatalogRepository) CreateAsset(ctx context.Context, a *domain.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = m.nextSeq()
	m.assets[a.ID] = a
	return nil
}

func (m *MockCatalogRepository) ListAssets(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Asset
	for _, a := range m.assets {
		if a.TenantID == tenantID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockCatalogRepository) DeleteAsset(ctx context.Context, tenantID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.assets[id]; ok && a.TenantID == tenantID {
		delete(m.assets, id)
		return nil
	}
	return domain.ErrCatalogItemNotFound
}

func (m *MockCatalogRepository) CreateCostCenter(ctx context.Context, c *domain.CostCenter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c.ID = m.nextSeq()
	m.costCenters[c.ID] = c
	return nil
}

func (m *MockCatalogRepository) ListCostCenters(ctx context.Context, tenantID int64, limit, offset int) ([]*domain.CostCenter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.CostCenter
	for _, c := range m.costCenters {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockCatalogRepository) DeleteCostCenter(ctx context.Context, tenantID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.costCenters[id]; ok && c.TenantID == tenantID {
		delete(m.costCenters, id)
		return nil
	}
	return domain.ErrCatalogItemNotFound
}
