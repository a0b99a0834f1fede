package scheduler

import "ciftlik-backend/internal/models"

// Snapshot: Motorun üzerinde çalıştığı salt-okunur veri kesiti. Çağıran
// (dashboard handler'ı) her istekte veritabanından taze bir kesit kurar;
// motor kendisi hiçbir I/O yapmaz ve durum tutmaz.
type Snapshot struct {
	Farms           []models.Farm
	Beds            []models.Bed
	Lines           []models.Line
	Crops           []models.Crop
	ActivePlantings []models.Planting

	// Rotasyon politikası için: sıra id → o sırada en son yetişen bitki id.
	// Boş bırakılabilir.
	LastCropByLine map[uint]uint
}

// Thresholds: Öneri önceliği ve verim sınıflandırması eşikleri.
// Sabit değil, konfigürasyondan gelir.
type Thresholds struct {
	PriorityHigh   float64 // talep skoru >= bu ise high
	PriorityMedium float64 // talep skoru >= bu ise medium
	YieldHighPct   float64 // verim yüzdesi > bu ise high
	YieldLowPct    float64 // verim yüzdesi < bu ise low
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		PriorityHigh:   0.8,
		PriorityMedium: 0.6,
		YieldHighPct:   100,
		YieldLowPct:    80,
	}
}

func (s *Snapshot) cropByID() map[uint]models.Crop {
	m := make(map[uint]models.Crop, len(s.Crops))
	for _, c := range s.Crops {
		m[c.ID] = c
	}
	return m
}

func (s *Snapshot) bedByID() map[uint]models.Bed {
	m := make(map[uint]models.Bed, len(s.Beds))
	for _, b := range s.Beds {
		m[b.ID] = b
	}
	return m
}

func (s *Snapshot) lineByID() map[uint]models.Line {
	m := make(map[uint]models.Line, len(s.Lines))
	for _, l := range s.Lines {
		m[l.ID] = l
	}
	return m
}

// occupiedLines: Aktif ekim taşıyan sıra id'leri.
func (s *Snapshot) occupiedLines() map[uint]bool {
	m := make(map[uint]bool, len(s.ActivePlantings))
	for _, p := range s.ActivePlantings {
		m[p.LineID] = true
	}
	return m
}
