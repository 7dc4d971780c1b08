package account

import (
	"errors"
	"fmt"

	"github.com/jx3tools/jx3-tracker-backend/internal/platform/database"
	"gorm.io/gorm"
)

// ListAccounts 返回全部账号（含角色），按创建顺序
func ListAccounts() ([]Account, error) {
	var accounts []Account
	if err := database.DB.Preload("Roles").Order("id asc").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("无法读取账号列表: %w", err)
	}
	return accounts, nil
}

// CreateAccount 落库一个新账号（可带角色）
func CreateAccount(a *Account) error {
	return database.DB.Create(a).Error
}

// UpdateAccount 以account_id整条替换账号及其角色列表
func UpdateAccount(a *Account) error {
	var existing Account
	err := database.DB.Where("account_id = ?", a.AccountID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("找不到ID为 %s 的账号", a.AccountID)
	}
	if err != nil {
		return err
	}
	a.ID = existing.ID
	a.CreatedAt = existing.CreatedAt

	return database.DB.Transaction(func(tx *gorm.DB) error {
		// 角色列表整体替换。必须硬删除：软删行仍占role_id唯一索引，
		// 重新提交同一角色时会撞UNIQUE约束
		if err := tx.Unscoped().Where("account_ref = ?", a.AccountID).Delete(&Role{}).Error; err != nil {
			return err
		}
		for i := range a.Roles {
			a.Roles[i].AccountRef = a.AccountID
		}
		return tx.Save(a).Error
	})
}

// DeleteAccount 删除账号及其全部角色。
// 同样走硬删除，否则同一account_id/role_id日后无法再次录入。
func DeleteAccount(accountID string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("account_ref = ?", accountID).Delete(&Role{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Where("account_id = ?", accountID).Delete(&Account{}).Error
	})
}
