package category

// Category 分类实体（聚合根）
// 设计说明：
// 1. ParentID自引用形成分类树（顶级分类ParentID为nil）
// 2. 分类是永久性的分类体系，没有软删除字段，也不对外暴露删除操作
type Category struct {
	ID          uint
	Name        string
	Description string
	ParentID    *uint
}

// NewCategory 创建新分类（工厂方法）
func NewCategory(name, description string, parentID *uint) *Category {
	return &Category{
		Name:        name,
		Description: description,
		ParentID:    parentID,
	}
}

// UpdateInfo 更新分类信息（空字段保持不变）
func (c *Category) UpdateInfo(name, description string) {
	if name != "" {
		c.Name = name
	}
	if description != "" {
		c.Description = description
	}
}

// IsRoot 是否为顶级分类
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}
