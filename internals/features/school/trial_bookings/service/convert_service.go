package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "sekolahku_backend/internals/features/school/classes/model"
	enrollmentModel "sekolahku_backend/internals/features/school/enrollments/model"
	parentModel "sekolahku_backend/internals/features/school/parents/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	trialModel "sekolahku_backend/internals/features/school/trial_bookings/model"
)

// ConvertResult: hasil konversi trial → siswa aktif
type ConvertResult struct {
	StudentID    uuid.UUID `json:"student_id"`
	ParentID     uuid.UUID `json:"parent_id"`
	EnrollmentID uuid.UUID `json:"enrollment_id"`
}

// ConvertToEnrollment mengubah satu trial booking menjadi parent (reuse kalau
// nomor telepon sudah ada), student baru, dan enrollment aktif — satu transaksi.
// Status booking jadi converted; error *fiber.Error supaya controller bisa
// meneruskan status code-nya.
func ConvertToEnrollment(db *gorm.DB, booking *trialModel.TrialBookingModel, classID uuid.UUID, now time.Time) (*ConvertResult, error) {
	if booking.TrialBookingStatus == trialModel.TrialBookingStatusConverted {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Booking sudah pernah dikonversi")
	}
	if booking.TrialBookingStatus == trialModel.TrialBookingStatusCancelled {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Booking sudah dibatalkan")
	}

	var result ConvertResult

	err := db.Transaction(func(tx *gorm.DB) error {
		// 1) Pastikan kelas tujuan masih menerima siswa
		var cls classModel.ClassModel
		if err := tx.
			Where("class_id = ? AND class_status IN ?", classID,
				[]string{classModel.ClassStatusPublished, classModel.ClassStatusStarted}).
			First(&cls).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Kelas tujuan tidak ditemukan / tidak menerima pendaftaran")
			}
			return err
		}
		if cls.ClassMaxStudents > 0 && cls.ClassEnrolledCount >= cls.ClassMaxStudents {
			return fiber.NewError(fiber.StatusBadRequest, "Kelas sudah penuh")
		}

		// 2) Reuse parent kalau nomor telepon sudah terdaftar
		var parent parentModel.ParentModel
		err := tx.Where("parent_phone = ?", booking.TrialBookingPhone).First(&parent).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			parent = parentModel.ParentModel{
				ParentName:       booking.TrialBookingParentName,
				ParentPhone:      booking.TrialBookingPhone,
				ParentEmail:      booking.TrialBookingEmail,
				ParentLineUserID: booking.TrialBookingLineUserID,
			}
			if err := tx.Create(&parent).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			// parent lama tanpa LINE → tautkan dari booking
			if parent.ParentLineUserID == nil && booking.TrialBookingLineUserID != nil {
				if err := tx.Model(&parentModel.ParentModel{}).
					Where("parent_id = ?", parent.ParentID).
					Update("parent_line_user_id", booking.TrialBookingLineUserID).Error; err != nil {
					return err
				}
			}
		}

		// 3) Siswa baru
		student := studentModel.StudentModel{
			StudentBranchID: booking.TrialBookingBranchID,
			StudentParentID: &parent.ParentID,
			StudentName:     booking.TrialBookingChildName,
		}
		if err := tx.Create(&student).Error; err != nil {
			return err
		}

		// 4) Enrollment aktif + naikkan counter kelas
		enrollment := enrollmentModel.EnrollmentModel{
			EnrollmentStudentID:  student.StudentID,
			EnrollmentClassID:    classID,
			EnrollmentStatus:     enrollmentModel.EnrollmentStatusActive,
			EnrollmentEnrolledAt: now,
		}
		if err := tx.Create(&enrollment).Error; err != nil {
			return err
		}
		if err := tx.Model(&classModel.ClassModel{}).
			Where("class_id = ?", classID).
			Update("class_enrolled_count", gorm.Expr("class_enrolled_count + 1")).Error; err != nil {
			return err
		}

		// 5) Stamp booking
		if err := tx.Model(&trialModel.TrialBookingModel{}).
			Where("trial_booking_id = ?", booking.TrialBookingID).
			Updates(map[string]any{
				"trial_booking_status":               trialModel.TrialBookingStatusConverted,
				"trial_booking_converted_student_id": student.StudentID,
				"trial_booking_converted_at":         now,
				"trial_booking_updated_at":           now,
			}).Error; err != nil {
			return err
		}

		result = ConvertResult{
			StudentID:    student.StudentID,
			ParentID:     parent.ParentID,
			EnrollmentID: enrollment.EnrollmentID,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
