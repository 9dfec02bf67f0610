package services

import (
	"sort"
	"strings"

	"github.com/adeanumainah/coffe-corner/entity"
	"github.com/adeanumainah/coffe-corner/repository"
)

// PageSize is the fixed catalog page size.
const PageSize = 8

// MaxMenuPrice caps what a menu item may cost.
const MaxMenuPrice = 10_000_000

type MenuService struct {
	Repo   *repository.MenuRepository
	Events Publisher
}

func NewMenuService(repo *repository.MenuRepository, events Publisher) *MenuService {
	return &MenuService{Repo: repo, Events: events}
}

type MenuDraft struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Status   string  `json:"status"`
}

func validateDraft(d MenuDraft) error {
	if strings.TrimSpace(d.Name) == "" {
		return invalid("name", "is required")
	}
	if len(strings.TrimSpace(d.Name)) < 3 {
		return invalid("name", "must be at least 3 characters")
	}
	if strings.TrimSpace(d.Category) == "" {
		return invalid("category", "is required")
	}
	if d.Price <= 0 {
		return invalid("price", "must be greater than zero")
	}
	if d.Price > MaxMenuPrice {
		return invalid("price", "exceeds the maximum of 10,000,000")
	}
	if d.Image != "" && !strings.HasPrefix(d.Image, "http") {
		return invalid("image", "must be a URL starting with http")
	}
	if d.Status != "" && !entity.ValidMenuStatus(d.Status) {
		return invalid("status", "must be available or out-of-stock")
	}
	return nil
}

// Create validates the draft and appends it with id = max(existing)+1,
// or 1 on an empty catalog. Deleted ids are not reused.
func (s *MenuService) Create(d MenuDraft) (*entity.Menu, error) {
	if err := validateDraft(d); err != nil {
		return nil, err
	}
	menus, err := s.Repo.All()
	if err != nil {
		return nil, err
	}
	nextID := 1
	for _, m := range menus {
		if m.ID >= nextID {
			nextID = m.ID + 1
		}
	}
	status := d.Status
	if status == "" {
		status = entity.MenuAvailable
	}
	menu := entity.Menu{
		ID:       nextID,
		Name:     strings.TrimSpace(d.Name),
		Category: strings.TrimSpace(d.Category),
		Price:    d.Price,
		Image:    d.Image,
		Status:   status,
	}
	if err := s.Repo.Append(menu); err != nil {
		return nil, err
	}
	publish(s.Events, EventMenuChanged, menu)
	return &menu, nil
}

// Update replaces the record matching id after the same validation as
// Create.
func (s *MenuService) Update(id int, d MenuDraft) (*entity.Menu, error) {
	if err := validateDraft(d); err != nil {
		return nil, err
	}
	current, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}
	status := d.Status
	if status == "" {
		status = current.Status
	}
	menu := entity.Menu{
		ID:       id,
		Name:     strings.TrimSpace(d.Name),
		Category: strings.TrimSpace(d.Category),
		Price:    d.Price,
		Image:    d.Image,
		Status:   status,
	}
	if _, err := s.Repo.Replace(menu); err != nil {
		return nil, err
	}
	publish(s.Events, EventMenuChanged, menu)
	return &menu, nil
}

func (s *MenuService) Delete(id int) error {
	found, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	publish(s.Events, EventMenuChanged, map[string]int{"deleted": id})
	return nil
}

// SetStatus flips availability without touching the rest of the record.
func (s *MenuService) SetStatus(id int, status string) (*entity.Menu, error) {
	if !entity.ValidMenuStatus(status) {
		return nil, invalid("status", "must be available or out-of-stock")
	}
	menu, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrNotFound
	}
	menu.Status = status
	if _, err := s.Repo.Replace(*menu); err != nil {
		return nil, err
	}
	publish(s.Events, EventMenuChanged, *menu)
	return menu, nil
}

func (s *MenuService) Get(id int) (*entity.Menu, error) {
	menu, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, ErrNotFound
	}
	return menu, nil
}

// ListQuery is a pure projection over the catalog; nothing about it is
// persisted.
type ListQuery struct {
	Category string // empty or "All" selects everything
	Search   string // case-insensitive substring on name
	Sort     string // name-asc, name-desc, price-asc, price-desc
	Page     int    // 1-based; 0 means page 1
}

type MenuPage struct {
	Items      []entity.Menu `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

func (s *MenuService) List(q ListQuery) (*MenuPage, error) {
	menus, err := s.Repo.All()
	if err != nil {
		return nil, err
	}

	filtered := make([]entity.Menu, 0, len(menus))
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, m := range menus {
		if q.Category != "" && q.Category != "All" && m.Category != q.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(m.Name), search) {
			continue
		}
		filtered = append(filtered, m)
	}

	switch q.Sort {
	case "name-asc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Name < filtered[j].Name })
	case "name-desc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Name > filtered[j].Name })
	case "price-asc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case "price-desc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	}

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize
	page := q.Page
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start > total {
		start = total
	}
	end := start + PageSize
	if end > total {
		end = total
	}

	return &MenuPage{
		Items:      filtered[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// Categories returns the distinct categories in first-seen order, for the
// filter dropdown.
func (s *MenuService) Categories() ([]string, error) {
	menus, err := s.Repo.All()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, m := range menus {
		if !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	return out, nil
}

type CatalogCounts struct {
	Total      int `json:"total"`
	Available  int `json:"available"`
	OutOfStock int `json:"outOfStock"`
}

func (s *MenuService) Counts() (*CatalogCounts, error) {
	menus, err := s.Repo.All()
	if err != nil {
		return nil, err
	}
	c := &CatalogCounts{Total: len(menus)}
	for _, m := range menus {
		if m.Status == entity.MenuAvailable {
			c.Available++
		} else {
			c.OutOfStock++
		}
	}
	return c, nil
}
