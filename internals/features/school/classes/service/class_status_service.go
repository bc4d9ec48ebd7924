package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	scheduleModel "sekolahku_backend/internals/features/school/class_schedules/model"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	"sekolahku_backend/internals/helpers/dbtime"
)

/* =================== TRANSISI STATUS OTOMATIS ===================
   published →(start_date ≤ now)→ started
   {published, started} →(end_date lewat & tak ada sesi tersisa)→ completed
   Tidak pernah mundur; cancelled di luar mesin otomatis.
================================================================= */

// ShouldStart: kelas published yang tanggal mulainya sudah tiba
func ShouldStart(status string, startDate, now time.Time, loc *time.Location) bool {
	if status != classModel.ClassStatusPublished {
		return false
	}
	return !dbtime.StartOfDay(startDate, loc).After(now.In(loc))
}

// ShouldComplete: end_date (akhir hari) sudah lewat DAN tidak ada lagi sesi
// non-cancelled setelah hari ini
func ShouldComplete(status string, endDate, now time.Time, futureSessions int64, loc *time.Location) bool {
	if status != classModel.ClassStatusStarted && status != classModel.ClassStatusPublished {
		return false
	}
	if futureSessions > 0 {
		return false
	}
	return dbtime.EndOfDay(endDate, loc).Before(now.In(loc))
}

// StatusUpdateSummary: ringkasan satu kali jalan cron
type StatusUpdateSummary struct {
	ClassesChecked   int      `json:"classes_checked"`
	ClassesCompleted int      `json:"classes_completed"`
	ClassesStarted   int      `json:"classes_started"`
	Errors           []string `json:"errors"`
}

// UpdateClassStatuses memproses semua kelas berstatus published/started.
// Error per kelas dikumpulkan, tidak menghentikan batch.
func UpdateClassStatuses(db *gorm.DB, now time.Time) StatusUpdateSummary {
	loc := dbtime.AppLocation()
	summary := StatusUpdateSummary{Errors: []string{}}

	var classes []classModel.ClassModel
	if err := db.
		Where("class_status IN ?", []string{classModel.ClassStatusPublished, classModel.ClassStatusStarted}).
		Find(&classes).Error; err != nil {
		summary.Errors = append(summary.Errors, fmt.Sprintf("ambil daftar kelas: %v", err))
		return summary
	}

	today := dbtime.StartOfDay(now, loc)

	for _, cls := range classes {
		summary.ClassesChecked++

		// 1) published → started (cek independen)
		if ShouldStart(cls.ClassStatus, cls.ClassStartDate, now, loc) {
			if err := db.Model(&classModel.ClassModel{}).
				Where("class_id = ? AND class_status = ?", cls.ClassID, classModel.ClassStatusPublished).
				Updates(map[string]any{
					"class_status":     classModel.ClassStatusStarted,
					"class_updated_at": now,
				}).Error; err != nil {
				summary.Errors = append(summary.Errors,
					fmt.Sprintf("kelas %s: gagal set started: %v", cls.ClassID, err))
			} else {
				summary.ClassesStarted++
				cls.ClassStatus = classModel.ClassStatusStarted
			}
		}

		// 2) → completed, kalau end_date lewat & tidak ada sesi tersisa
		var futureSessions int64
		if err := db.Model(&scheduleModel.ClassScheduleModel{}).
			Where(`class_schedule_class_id = ?
				AND class_schedule_status <> ?
				AND class_schedule_session_date > ?`,
				cls.ClassID, scheduleModel.ClassScheduleStatusCancelled, today).
			Count(&futureSessions).Error; err != nil {
			summary.Errors = append(summary.Errors,
				fmt.Sprintf("kelas %s: gagal hitung sesi tersisa: %v", cls.ClassID, err))
			continue
		}

		if ShouldComplete(cls.ClassStatus, cls.ClassEndDate, now, futureSessions, loc) {
			if err := db.Model(&classModel.ClassModel{}).
				Where("class_id = ? AND class_status IN ?", cls.ClassID,
					[]string{classModel.ClassStatusPublished, classModel.ClassStatusStarted}).
				Updates(map[string]any{
					"class_status":     classModel.ClassStatusCompleted,
					"class_updated_at": now,
				}).Error; err != nil {
				summary.Errors = append(summary.Errors,
					fmt.Sprintf("kelas %s: gagal set completed: %v", cls.ClassID, err))
			} else {
				summary.ClassesCompleted++
			}
		}
	}

	log.Printf("[CRON] update-class-status: checked=%d started=%d completed=%d errors=%d",
		summary.ClassesChecked, summary.ClassesStarted, summary.ClassesCompleted, len(summary.Errors))

	return summary
}
