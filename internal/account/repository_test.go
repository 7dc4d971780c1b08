package account

import (
	"testing"

	"github.com/jx3tools/jx3-tracker-backend/internal/platform/database"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("无法打开内存数据库: %v", err)
	}
	if err := db.AutoMigrate(&Account{}, &Role{}); err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	database.DB = db
}

// 编辑账号时重新提交同一个角色ID必须成功：
// 角色列表是整体替换的，旧行若只做软删除会继续占用role_id唯一索引
func TestUpdateAccountKeepsExistingRole(t *testing.T) {
	setupTestDB(t)

	created := Account{
		AccountID:   "acc-1",
		AccountName: "主号",
		Type:        TypeOwn,
		Roles: []Role{
			{RoleID: "r1", Name: "白某", Server: "幽月轮", EquipmentScore: 15000},
		},
	}
	if err := CreateAccount(&created); err != nil {
		t.Fatalf("创建账号失败: %v", err)
	}

	// 模拟前端整单重交：保留r1，追加r2
	updated := Account{
		AccountID:   "acc-1",
		AccountName: "主号改名",
		Type:        TypeOwn,
		Roles: []Role{
			{RoleID: "r1", Name: "白某", Server: "幽月轮", EquipmentScore: 15500},
			{RoleID: "r2", Name: "李某", Server: "梦江南"},
		},
	}
	if err := UpdateAccount(&updated); err != nil {
		t.Fatalf("保留已有角色的更新失败: %v", err)
	}

	accounts, err := ListAccounts()
	if err != nil {
		t.Fatalf("读取账号失败: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("期望1个账号，得到 %d", len(accounts))
	}
	if accounts[0].AccountName != "主号改名" {
		t.Errorf("账号名未更新: %s", accounts[0].AccountName)
	}
	if len(accounts[0].Roles) != 2 {
		t.Fatalf("期望2个角色，得到 %d", len(accounts[0].Roles))
	}
	if accounts[0].Roles[0].EquipmentScore != 15500 {
		t.Errorf("r1装分未更新: %d", accounts[0].Roles[0].EquipmentScore)
	}
}

// 更新时被移除的角色不应残留
func TestUpdateAccountDropsRemovedRole(t *testing.T) {
	setupTestDB(t)

	created := Account{
		AccountID: "acc-1",
		Type:      TypeOwn,
		Roles: []Role{
			{RoleID: "r1", Name: "白某"},
			{RoleID: "r2", Name: "李某"},
		},
	}
	if err := CreateAccount(&created); err != nil {
		t.Fatalf("创建账号失败: %v", err)
	}

	updated := Account{
		AccountID: "acc-1",
		Type:      TypeOwn,
		Roles: []Role{
			{RoleID: "r1", Name: "白某"},
		},
	}
	if err := UpdateAccount(&updated); err != nil {
		t.Fatalf("更新失败: %v", err)
	}

	var roles []Role
	if err := database.DB.Find(&roles).Error; err != nil {
		t.Fatalf("读取角色失败: %v", err)
	}
	if len(roles) != 1 || roles[0].RoleID != "r1" {
		t.Fatalf("期望只剩r1，得到 %+v", roles)
	}
}

func TestUpdateAccountMissing(t *testing.T) {
	setupTestDB(t)

	err := UpdateAccount(&Account{AccountID: "不存在"})
	if err == nil {
		t.Fatal("更新不存在的账号应当报错")
	}
}

// 删除后同一账号/角色ID要能重新录入
func TestDeleteAccountAllowsIDReuse(t *testing.T) {
	setupTestDB(t)

	first := Account{
		AccountID: "acc-1",
		Type:      TypeOwn,
		Roles:     []Role{{RoleID: "r1", Name: "白某"}},
	}
	if err := CreateAccount(&first); err != nil {
		t.Fatalf("创建账号失败: %v", err)
	}
	if err := DeleteAccount("acc-1"); err != nil {
		t.Fatalf("删除账号失败: %v", err)
	}

	second := Account{
		AccountID: "acc-1",
		Type:      TypeClient,
		Roles:     []Role{{RoleID: "r1", Name: "新主人"}},
	}
	if err := CreateAccount(&second); err != nil {
		t.Fatalf("复用ID重建账号失败: %v", err)
	}

	accounts, err := ListAccounts()
	if err != nil {
		t.Fatalf("读取账号失败: %v", err)
	}
	if len(accounts) != 1 || accounts[0].Type != TypeClient {
		t.Fatalf("重建后的账号不符合预期: %+v", accounts)
	}
}
