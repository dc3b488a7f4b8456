package repository_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/p-stoney/discordbot-restapi/internal/model"
	"github.com/p-stoney/discordbot-restapi/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

// newTestDB 为每个测试创建独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("无法打开内存数据库: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层 sql.DB 失败: %v", err)
	}
	// 共享缓存的内存库仅在连接存活期间存在，限制为单连接
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.User{},
		&model.Sprint{},
		&model.Template{},
		&model.Message{},
	); err != nil {
		t.Fatalf("AutoMigrate 失败: %v", err)
	}

	return db
}

func seedTestUser(t *testing.T, repo *repository.Repository, username, discordID string) *model.User {
	t.Helper()
	user := &model.User{Username: username, DiscordID: discordID}
	if err := repo.User.Create(context.Background(), user); err != nil {
		t.Fatalf("创建学员失败: %v", err)
	}
	return user
}

func seedTestSprint(t *testing.T, repo *repository.Repository, course string, module, sprint int, code, title string) *model.Sprint {
	t.Helper()
	s := &model.Sprint{Course: course, Module: module, Sprint: sprint, Code: code, Title: title}
	if err := repo.Sprint.Create(context.Background(), s); err != nil {
		t.Fatalf("创建 Sprint 失败: %v", err)
	}
	return s
}

// ═══════════════════════════════════════════════════════════
// UserRepository Tests
// ═══════════════════════════════════════════════════════════

func TestUserRepo_CreateAndFindByID(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()

	user := seedTestUser(t, repo, "pstone", "579742104050335755")
	if user.ID == 0 {
		t.Fatal("期望分配自增 ID")
	}

	found, err := repo.User.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID 应成功: %v", err)
	}
	if found.Username != "pstone" || found.DiscordID != "579742104050335755" {
		t.Errorf("记录内容不一致: %+v", found)
	}
}

func TestUserRepo_FindByID_NotFound(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))

	_, err := repo.User.FindByID(context.Background(), 999)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("期望 gorm.ErrRecordNotFound，实际: %v", err)
	}
}

func TestUserRepo_FindByName(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	seedTestUser(t, repo, "pstone", "579742104050335755")
	seedTestUser(t, repo, "jdoe2024", "123456789012345678")

	found, err := repo.User.FindByName(context.Background(), "jdoe2024")
	if err != nil {
		t.Fatalf("FindByName 应成功: %v", err)
	}
	if found.DiscordID != "123456789012345678" {
		t.Errorf("期望discord_id=123456789012345678，实际=%s", found.DiscordID)
	}
}

func TestUserRepo_FindByDiscordID(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	seedTestUser(t, repo, "pstone", "579742104050335755")

	found, err := repo.User.FindByDiscordID(context.Background(), "579742104050335755")
	if err != nil {
		t.Fatalf("FindByDiscordID 应成功: %v", err)
	}
	if found.Username != "pstone" {
		t.Errorf("期望username=pstone，实际=%s", found.Username)
	}
}

func TestUserRepo_UniqueUsername(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	seedTestUser(t, repo, "pstone", "579742104050335755")

	err := repo.User.Create(context.Background(), &model.User{
		Username:  "pstone",
		DiscordID: "123456789012345678",
	})
	if err == nil {
		t.Error("期望唯一约束冲突")
	}
}

func TestUserRepo_UniqueDiscordID(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	seedTestUser(t, repo, "pstone", "579742104050335755")

	err := repo.User.Create(context.Background(), &model.User{
		Username:  "jdoe2024",
		DiscordID: "579742104050335755",
	})
	if err == nil {
		t.Error("期望唯一约束冲突")
	}
}

func TestUserRepo_FindAll_Pagination(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		seedTestUser(t, repo, fmt.Sprintf("user%04d", i), fmt.Sprintf("10000000000000000%d", i))
	}

	users, err := repo.User.FindAll(ctx, 2, 2)
	if err != nil {
		t.Fatalf("FindAll 应成功: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("期望2条记录，实际=%d", len(users))
	}
	if users[0].Username != "user0002" {
		t.Errorf("期望偏移后首条为user0002，实际=%s", users[0].Username)
	}

	// 偏移超出范围时返回空集
	users, err = repo.User.FindAll(ctx, 10, 100)
	if err != nil {
		t.Fatalf("FindAll 应成功: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("期望空集，实际=%d", len(users))
	}
}

func TestUserRepo_Update_Partial(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	user := seedTestUser(t, repo, "pstone", "579742104050335755")

	updated, err := repo.User.Update(ctx, user.ID, map[string]interface{}{
		"username": "pstone2024",
	})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.Username != "pstone2024" {
		t.Errorf("期望username=pstone2024，实际=%s", updated.Username)
	}
	if updated.DiscordID != "579742104050335755" {
		t.Errorf("期望discord_id保持不变，实际=%s", updated.DiscordID)
	}
}

func TestUserRepo_Update_EmptyFields(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	user := seedTestUser(t, repo, "pstone", "579742104050335755")

	// 空更新等价于按 id 查询
	updated, err := repo.User.Update(context.Background(), user.ID, map[string]interface{}{})
	if err != nil {
		t.Fatalf("空更新应成功: %v", err)
	}
	if updated.Username != "pstone" {
		t.Errorf("期望记录保持不变，实际=%+v", updated)
	}
}

func TestUserRepo_Update_NotFound(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))

	_, err := repo.User.Update(context.Background(), 999, map[string]interface{}{
		"username": "pstone2024",
	})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("期望 gorm.ErrRecordNotFound，实际: %v", err)
	}
}

func TestUserRepo_Remove(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	user := seedTestUser(t, repo, "pstone", "579742104050335755")

	if err := repo.User.Remove(ctx, user.ID); err != nil {
		t.Fatalf("Remove 应成功: %v", err)
	}
	if _, err := repo.User.FindByID(ctx, user.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("期望记录已删除，实际: %v", err)
	}

	// 目标不存在时静默成功
	if err := repo.User.Remove(ctx, 999); err != nil {
		t.Errorf("期望静默成功，实际: %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// SprintRepository Tests
// ═══════════════════════════════════════════════════════════

func TestSprintRepo_FindByCode(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	seedTestSprint(t, repo, "WD", 1, 1, "WD-1.1", "Sprint 1")

	found, err := repo.Sprint.FindByCode(context.Background(), "WD-1.1")
	if err != nil {
		t.Fatalf("FindByCode 应成功: %v", err)
	}
	if found.Title != "Sprint 1" {
		t.Errorf("期望title=Sprint 1，实际=%s", found.Title)
	}
}

func TestSprintRepo_FindByCourse(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	seedTestSprint(t, repo, "WD", 1, 1, "WD-1.1", "Sprint 1")
	seedTestSprint(t, repo, "WD", 1, 2, "WD-1.2", "Sprint 2")
	seedTestSprint(t, repo, "DS", 1, 1, "DS-1.1", "Sprint 1")

	sprints, err := repo.Sprint.FindByCourse(context.Background(), "WD")
	if err != nil {
		t.Fatalf("FindByCourse 应成功: %v", err)
	}
	if len(sprints) != 2 {
		t.Errorf("期望2条WD记录，实际=%d", len(sprints))
	}

	sprints, err = repo.Sprint.FindByCourse(context.Background(), "DA")
	if err != nil {
		t.Fatalf("FindByCourse 应成功: %v", err)
	}
	if len(sprints) != 0 {
		t.Errorf("期望空集，实际=%d", len(sprints))
	}
}

func TestSprintRepo_UniqueCode(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	seedTestSprint(t, repo, "WD", 1, 1, "WD-1.1", "Sprint 1")

	err := repo.Sprint.Create(context.Background(), &model.Sprint{
		Course: "WD", Module: 1, Sprint: 1, Code: "WD-1.1", Title: "Duplicate",
	})
	if err == nil {
		t.Error("期望唯一约束冲突")
	}
}

func TestSprintRepo_FindByIDs(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	s1 := seedTestSprint(t, repo, "WD", 1, 1, "WD-1.1", "Sprint 1")
	seedTestSprint(t, repo, "WD", 1, 2, "WD-1.2", "Sprint 2")
	s3 := seedTestSprint(t, repo, "WD", 1, 3, "WD-1.3", "Sprint 3")

	sprints, err := repo.Sprint.FindByIDs(context.Background(), []int64{s1.ID, s3.ID})
	if err != nil {
		t.Fatalf("FindByIDs 应成功: %v", err)
	}
	if len(sprints) != 2 {
		t.Errorf("期望2条记录，实际=%d", len(sprints))
	}
}

// ═══════════════════════════════════════════════════════════
// TemplateRepository Tests
// ═══════════════════════════════════════════════════════════

func TestTemplateRepo_FindRandom(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()

	// 空表时返回未找到
	if _, err := repo.Template.FindRandom(ctx); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("期望 gorm.ErrRecordNotFound，实际: %v", err)
	}

	seen := map[int64]bool{}
	for _, text := range []string{
		"Congratulations {user} for completing {sprint}!",
		"Well done {user}, {sprint} is behind you!",
		"Great job {user} on finishing {sprint}!",
	} {
		tpl := &model.Template{Template: text, IsActive: "1"}
		if err := repo.Template.Create(ctx, tpl); err != nil {
			t.Fatalf("创建模板失败: %v", err)
		}
		seen[tpl.ID] = true
	}

	// 随机抽取应始终返回已入库的记录
	for i := 0; i < 10; i++ {
		tpl, err := repo.Template.FindRandom(ctx)
		if err != nil {
			t.Fatalf("FindRandom 应成功: %v", err)
		}
		if !seen[tpl.ID] {
			t.Errorf("返回了未知记录: %+v", tpl)
		}
	}
}

func TestTemplateRepo_Update_IsActive(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()

	tpl := &model.Template{Template: "Congratulations {user} for completing {sprint}!", IsActive: "1"}
	if err := repo.Template.Create(ctx, tpl); err != nil {
		t.Fatalf("创建模板失败: %v", err)
	}

	updated, err := repo.Template.Update(ctx, tpl.ID, map[string]interface{}{"is_active": "0"})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.IsActive != "0" {
		t.Errorf("期望is_active=0，实际=%s", updated.IsActive)
	}
	if updated.Template != tpl.Template {
		t.Errorf("期望template保持不变，实际=%s", updated.Template)
	}
}

// ═══════════════════════════════════════════════════════════
// MessageRepository Tests
// ═══════════════════════════════════════════════════════════

func TestMessageRepo_CreateAssignsTimestamp(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	user := seedTestUser(t, repo, "pstone", "579742104050335755")
	sprint := seedTestSprint(t, repo, "WD", 1, 1, "WD-1.1", "Sprint 1")

	msg := &model.Message{
		UserID:   user.ID,
		SprintID: sprint.ID,
		Status:   200,
		GifURL:   "http://example.com/gif",
		Message:  "Congratulations!",
	}
	if err := repo.Message.Create(ctx, msg); err != nil {
		t.Fatalf("创建消息记录失败: %v", err)
	}

	found, err := repo.Message.FindByID(ctx, msg.ID)
	if err != nil {
		t.Fatalf("FindByID 应成功: %v", err)
	}
	// timestamp 由数据库默认值生成
	if found.Timestamp.IsZero() {
		t.Error("期望数据库分配timestamp")
	}
	if found.Status != 200 {
		t.Errorf("期望status=200，实际=%d", found.Status)
	}
}

func TestMessageRepo_FindByUserID(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	u1 := seedTestUser(t, repo, "pstone", "579742104050335755")
	u2 := seedTestUser(t, repo, "jdoe2024", "123456789012345678")
	sprint := seedTestSprint(t, repo, "WD", 1, 1, "WD-1.1", "Sprint 1")

	for _, uid := range []int64{u1.ID, u1.ID, u2.ID} {
		msg := &model.Message{
			UserID: uid, SprintID: sprint.ID, Status: 200,
			GifURL: "http://example.com/gif", Message: "Congratulations!",
		}
		if err := repo.Message.Create(ctx, msg); err != nil {
			t.Fatalf("创建消息记录失败: %v", err)
		}
	}

	messages, err := repo.Message.FindByUserID(ctx, u1.ID)
	if err != nil {
		t.Fatalf("FindByUserID 应成功: %v", err)
	}
	if len(messages) != 2 {
		t.Errorf("期望2条记录，实际=%d", len(messages))
	}
}

func TestMessageRepo_FindBySprintID(t *testing.T) {
	repo := repository.NewRepository(newTestDB(t))
	ctx := context.Background()
	user := seedTestUser(t, repo, "pstone", "579742104050335755")
	s1 := seedTestSprint(t, repo, "WD", 1, 1, "WD-1.1", "Sprint 1")
	s2 := seedTestSprint(t, repo, "WD", 1, 2, "WD-1.2", "Sprint 2")

	for _, sid := range []int64{s1.ID, s2.ID, s2.ID} {
		msg := &model.Message{
			UserID: user.ID, SprintID: sid, Status: 200,
			GifURL: "http://example.com/gif", Message: "Congratulations!",
		}
		if err := repo.Message.Create(ctx, msg); err != nil {
			t.Fatalf("创建消息记录失败: %v", err)
		}
	}

	messages, err := repo.Message.FindBySprintID(ctx, s2.ID)
	if err != nil {
		t.Fatalf("FindBySprintID 应成功: %v", err)
	}
	if len(messages) != 2 {
		t.Errorf("期望2条记录，实际=%d", len(messages))
	}
}
