package publisher

import (
	"time"
)

// Publisher 出版社实体（聚合根）
type Publisher struct {
	ID        uint
	Name      string
	Address   string
	Email     string
	Phone     string
	Website   string
	IsDeleted bool
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPublisher 创建新出版社（工厂方法）
func NewPublisher(name, address, email, phone, website string) *Publisher {
	now := time.Now()
	return &Publisher{
		Name:      name,
		Address:   address,
		Email:     email,
		Phone:     phone,
		Website:   website,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateInfo 更新出版社信息（空字段保持不变）
func (p *Publisher) UpdateInfo(name, address, email, phone, website string) {
	if name != "" {
		p.Name = name
	}
	if address != "" {
		p.Address = address
	}
	if email != "" {
		p.Email = email
	}
	if phone != "" {
		p.Phone = phone
	}
	if website != "" {
		p.Website = website
	}
	p.UpdatedAt = time.Now()
}
