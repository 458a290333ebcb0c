package store

import "github.com/nhle/gorev-takip/internal/model"

// FixtureTasks returns the tasks a fresh store is seeded with, newest
// first. Each call returns a new slice.
func FixtureTasks() []model.Task {
	return []model.Task{
		{
			ID:             "1",
			Title:          "Depo Envanter Kontrolü",
			PersonFullName: "Mehmet Demir",
			DateText:       "12 Şub",
			DueISO:         "2026-02-12",
			Status:         model.StatusPending,
			Priority:       model.PriorityHigh,
			Description:    "Ana deponun envanter sayımı ve eksik malzemelerin tespiti",
			Location:       "Ana Depo",
			Team:           "Depo Ekibi",
			Category:       model.CategoryWarehouse,
		},
		{
			ID:             "2",
			Title:          "Klima Bakımı - Ofis 3",
			PersonFullName: "Ayşe Kara",
			DateText:       "10 Şub",
			DueISO:         "2026-02-10",
			Status:         model.StatusInProgress,
			Priority:       model.PriorityMedium,
			Description:    "Üçüncü kat ofis klimalarının periyodik bakımı",
			Location:       "3. Kat Ofis",
			Team:           "Bakım Ekibi",
			Category:       model.CategoryMaintenance,
		},
		{
			ID:             "3",
			Title:          "Saha Müşteri Ziyareti",
			PersonFullName: "Mehmet Demir",
			DateText:       "9 Şub",
			DueISO:         "2026-02-09",
			Status:         model.StatusDone,
			Priority:       model.PriorityLow,
			Description:    "Müşteri sahasında kontrol ve raporlama",
			Location:       "Saha",
			Team:           "Operasyon",
			Category:       model.CategoryField,
		},
		{
			ID:             "4",
			Title:          "Elektrik Panosu Kontrolü",
			PersonFullName: "Fatma Şahin",
			DateText:       "11 Şub",
			DueISO:         "2026-02-11",
			Status:         model.StatusPending,
			Priority:       model.PriorityMedium,
			Description:    "Elektrik panolarının güvenlik kontrolleri",
			Location:       "Atölye",
			Team:           "Bakım Ekibi",
			Category:       model.CategoryMaintenance,
		},
	}
}

// FixtureNotifications returns the notifications a fresh store is
// seeded with, newest first.
func FixtureNotifications() []model.Notification {
	return []model.Notification{
		{
			ID:        "n1",
			Type:      model.NotificationAssigned,
			Title:     "Yeni Görev Atandı",
			Message:   `Size "Depo Envanter Kontrolü" görevi atandı`,
			DateText:  "Dün",
			TaskID:    "1",
			UserScope: model.ScopeEmployee,
			Assignee:  "Mehmet Demir",
		},
		{
			ID:        "n2",
			Type:      model.NotificationStatusChanged,
			Title:     "Görev Durumu Değişti",
			Message:   `"Klima Bakımı" görevi devam ediyor olarak güncellendi`,
			DateText:  "Dün",
			TaskID:    "2",
			UserScope: model.ScopeAll,
		},
	}
}

// Employees returns the people tasks can be assigned to.
func Employees() []string {
	return []string{"Mehmet Demir", "Ayşe Kara", "Fatma Şahin"}
}
