package services

import "github.com/adeanumainah/coffe-corner/repository"

// PreferenceService covers the theme toggle and the liked-items map.
type PreferenceService struct {
	Repo *repository.PreferenceRepository
}

func NewPreferenceService(repo *repository.PreferenceRepository) *PreferenceService {
	return &PreferenceService{Repo: repo}
}

func (s *PreferenceService) Theme() (string, error) {
	theme, err := s.Repo.Theme()
	if err != nil {
		return "", err
	}
	if theme == "" {
		theme = "light"
	}
	return theme, nil
}

func (s *PreferenceService) SetTheme(theme string) error {
	if theme != "light" && theme != "dark" {
		return invalid("theme", "must be light or dark")
	}
	return s.Repo.SetTheme(theme)
}

// ToggleLike flips the liked flag for a menu id and returns the new
// state.
func (s *PreferenceService) ToggleLike(menuID int) (bool, error) {
	liked, err := s.Repo.LikedItems()
	if err != nil {
		return false, err
	}
	if liked[menuID] {
		delete(liked, menuID)
	} else {
		liked[menuID] = true
	}
	if err := s.Repo.SaveLikedItems(liked); err != nil {
		return false, err
	}
	return liked[menuID], nil
}

func (s *PreferenceService) Liked() (map[int]bool, error) {
	return s.Repo.LikedItems()
}
