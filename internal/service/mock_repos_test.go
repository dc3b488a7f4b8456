package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/p-stoney/discordbot-restapi/internal/model"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*model.User), nextID: 1}
}

func (m *mockUserRepo) Find(_ context.Context, _ string, _ ...interface{}) ([]model.User, error) {
	var result []model.User
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) FindAll(_ context.Context, limit, offset int) ([]model.User, error) {
	return paginate(sortedByID(m.users), limit, offset), nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByIDs(_ context.Context, ids []int64) ([]model.User, error) {
	var result []model.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			result = append(result, *u)
		}
	}
	return result, nil
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.ID == 0 {
		user.ID = m.nextID
		m.nextID++
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) Update(_ context.Context, id int64, fields map[string]interface{}) (*model.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := fields["username"]; ok {
		u.Username = v.(string)
	}
	if v, ok := fields["discord_id"]; ok {
		u.DiscordID = v.(string)
	}
	return u, nil
}

func (m *mockUserRepo) Remove(_ context.Context, id int64) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) FindByName(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) FindByDiscordID(_ context.Context, discordID string) (*model.User, error) {
	for _, u := range m.users {
		if u.DiscordID == discordID {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Mock SprintRepository ──

type mockSprintRepo struct {
	sprints map[int64]*model.Sprint
	nextID  int64
}

func newMockSprintRepo() *mockSprintRepo {
	return &mockSprintRepo{sprints: make(map[int64]*model.Sprint), nextID: 1}
}

func (m *mockSprintRepo) Find(_ context.Context, _ string, _ ...interface{}) ([]model.Sprint, error) {
	var result []model.Sprint
	for _, s := range m.sprints {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockSprintRepo) FindAll(_ context.Context, limit, offset int) ([]model.Sprint, error) {
	return paginate(sortedByID(m.sprints), limit, offset), nil
}

func (m *mockSprintRepo) FindByID(_ context.Context, id int64) (*model.Sprint, error) {
	if s, ok := m.sprints[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSprintRepo) FindByIDs(_ context.Context, ids []int64) ([]model.Sprint, error) {
	var result []model.Sprint
	for _, id := range ids {
		if s, ok := m.sprints[id]; ok {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSprintRepo) Create(_ context.Context, sprint *model.Sprint) error {
	if sprint.ID == 0 {
		sprint.ID = m.nextID
		m.nextID++
	}
	m.sprints[sprint.ID] = sprint
	return nil
}

func (m *mockSprintRepo) Update(_ context.Context, id int64, fields map[string]interface{}) (*model.Sprint, error) {
	s, ok := m.sprints[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := fields["course"]; ok {
		s.Course = v.(string)
	}
	if v, ok := fields["module"]; ok {
		s.Module = v.(int)
	}
	if v, ok := fields["sprint"]; ok {
		s.Sprint = v.(int)
	}
	if v, ok := fields["code"]; ok {
		s.Code = v.(string)
	}
	if v, ok := fields["title"]; ok {
		s.Title = v.(string)
	}
	return s, nil
}

func (m *mockSprintRepo) Remove(_ context.Context, id int64) error {
	delete(m.sprints, id)
	return nil
}

func (m *mockSprintRepo) FindByCode(_ context.Context, code string) (*model.Sprint, error) {
	for _, s := range m.sprints {
		if s.Code == code {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSprintRepo) FindByCourse(_ context.Context, course string) ([]model.Sprint, error) {
	var result []model.Sprint
	for _, s := range sortedByID(m.sprints) {
		if s.Course == course {
			result = append(result, s)
		}
	}
	return result, nil
}

// ── Mock TemplateRepository ──

type mockTemplateRepo struct {
	templates map[int64]*model.Template
	nextID    int64
}

func newMockTemplateRepo() *mockTemplateRepo {
	return &mockTemplateRepo{templates: make(map[int64]*model.Template), nextID: 1}
}

func (m *mockTemplateRepo) Find(_ context.Context, _ string, _ ...interface{}) ([]model.Template, error) {
	var result []model.Template
	for _, tpl := range m.templates {
		result = append(result, *tpl)
	}
	return result, nil
}

func (m *mockTemplateRepo) FindAll(_ context.Context, limit, offset int) ([]model.Template, error) {
	return paginate(sortedByID(m.templates), limit, offset), nil
}

func (m *mockTemplateRepo) FindByID(_ context.Context, id int64) (*model.Template, error) {
	if tpl, ok := m.templates[id]; ok {
		return tpl, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTemplateRepo) FindByIDs(_ context.Context, ids []int64) ([]model.Template, error) {
	var result []model.Template
	for _, id := range ids {
		if tpl, ok := m.templates[id]; ok {
			result = append(result, *tpl)
		}
	}
	return result, nil
}

func (m *mockTemplateRepo) Create(_ context.Context, template *model.Template) error {
	if template.ID == 0 {
		template.ID = m.nextID
		m.nextID++
	}
	m.templates[template.ID] = template
	return nil
}

func (m *mockTemplateRepo) Update(_ context.Context, id int64, fields map[string]interface{}) (*model.Template, error) {
	tpl, ok := m.templates[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := fields["template"]; ok {
		tpl.Template = v.(string)
	}
	if v, ok := fields["is_active"]; ok {
		tpl.IsActive = v.(string)
	}
	return tpl, nil
}

func (m *mockTemplateRepo) Remove(_ context.Context, id int64) error {
	delete(m.templates, id)
	return nil
}

// FindRandom 测试中取 ID 最小的一条，保证断言可预测
func (m *mockTemplateRepo) FindRandom(_ context.Context) (*model.Template, error) {
	sorted := sortedByID(m.templates)
	if len(sorted) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &sorted[0], nil
}

// ── Mock MessageRepository ──

type mockMessageRepo struct {
	messages map[int64]*model.Message
	nextID   int64
}

func newMockMessageRepo() *mockMessageRepo {
	return &mockMessageRepo{messages: make(map[int64]*model.Message), nextID: 1}
}

func (m *mockMessageRepo) Find(_ context.Context, _ string, _ ...interface{}) ([]model.Message, error) {
	var result []model.Message
	for _, msg := range m.messages {
		result = append(result, *msg)
	}
	return result, nil
}

func (m *mockMessageRepo) FindAll(_ context.Context, limit, offset int) ([]model.Message, error) {
	return paginate(sortedByID(m.messages), limit, offset), nil
}

func (m *mockMessageRepo) FindByID(_ context.Context, id int64) (*model.Message, error) {
	if msg, ok := m.messages[id]; ok {
		return msg, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockMessageRepo) FindByIDs(_ context.Context, ids []int64) ([]model.Message, error) {
	var result []model.Message
	for _, id := range ids {
		if msg, ok := m.messages[id]; ok {
			result = append(result, *msg)
		}
	}
	return result, nil
}

func (m *mockMessageRepo) Create(_ context.Context, message *model.Message) error {
	if message.ID == 0 {
		message.ID = m.nextID
		m.nextID++
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now()
	}
	m.messages[message.ID] = message
	return nil
}

func (m *mockMessageRepo) Update(_ context.Context, id int64, fields map[string]interface{}) (*model.Message, error) {
	msg, ok := m.messages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if v, ok := fields["user_id"]; ok {
		msg.UserID = v.(int64)
	}
	if v, ok := fields["sprint_id"]; ok {
		msg.SprintID = v.(int64)
	}
	if v, ok := fields["status"]; ok {
		msg.Status = v.(int)
	}
	if v, ok := fields["gif_url"]; ok {
		msg.GifURL = v.(string)
	}
	if v, ok := fields["message"]; ok {
		msg.Message = v.(string)
	}
	return msg, nil
}

func (m *mockMessageRepo) Remove(_ context.Context, id int64) error {
	delete(m.messages, id)
	return nil
}

func (m *mockMessageRepo) FindByUserID(_ context.Context, userID int64) ([]model.Message, error) {
	var result []model.Message
	for _, msg := range sortedByID(m.messages) {
		if msg.UserID == userID {
			result = append(result, msg)
		}
	}
	return result, nil
}

func (m *mockMessageRepo) FindBySprintID(_ context.Context, sprintID int64) ([]model.Message, error) {
	var result []model.Message
	for _, msg := range sortedByID(m.messages) {
		if msg.SprintID == sprintID {
			result = append(result, msg)
		}
	}
	return result, nil
}

// ── 通用辅助 ──

type hasID interface {
	model.User | model.Sprint | model.Template | model.Message
}

func sortedByID[M hasID](items map[int64]*M) []M {
	ids := make([]int64, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]M, 0, len(items))
	for _, id := range ids {
		result = append(result, *items[id])
	}
	return result
}

func paginate[M hasID](items []M, limit, offset int) []M {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
