package account

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListAll 返回整理后的账号列表（启用在前，账号内角色排好序）
func ListAll(c *gin.Context) {
	accounts, err := ListAccounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取账号列表失败"})
		return
	}
	c.JSON(http.StatusOK, SortAccounts(accounts))
}

// ListRoster 返回展开后的角色卡片列表
// 查询参数: excludeClient=true 剔除代清角色; activity=raid|baizhan|trial 按可见性过滤
func ListRoster(c *gin.Context) {
	accounts, err := ListAccounts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "读取账号列表失败"})
		return
	}
	opts := FlattenOptions{
		ExcludeClient: c.Query("excludeClient") == "true",
		Activity:      c.Query("activity"),
	}
	c.JSON(http.StatusOK, FlattenRoles(accounts, opts))
}

// Create 新建一个账号
func Create(c *gin.Context) {
	var a Account
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误: " + err.Error()})
		return
	}
	if a.AccountID == "" {
		a.AccountID = uuid.NewString()
	}
	if a.Type == "" {
		a.Type = TypeOwn
	}
	for i := range a.Roles {
		if a.Roles[i].RoleID == "" {
			a.Roles[i].RoleID = uuid.NewString()
		}
		a.Roles[i].AccountRef = a.AccountID
	}
	if err := CreateAccount(&a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存账号失败"})
		return
	}
	c.JSON(http.StatusCreated, a)
}

// Update 按ID整条替换账号
func Update(c *gin.Context) {
	var a Account
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求体格式错误: " + err.Error()})
		return
	}
	a.AccountID = c.Param("id")
	for i := range a.Roles {
		if a.Roles[i].RoleID == "" {
			a.Roles[i].RoleID = uuid.NewString()
		}
	}
	if err := UpdateAccount(&a); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

// Delete 按ID删除账号及其角色
func Delete(c *gin.Context) {
	if err := DeleteAccount(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "删除账号失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已删除"})
}
