package jobs

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	apptRepo "carolinebride.GO/model/repository/appointment"
)

// AppointmentDigestJob logs the day's bookings for the store team. Optional
// arg overrides the date (YYYY-MM-DD).
func AppointmentDigestJob(args ...string) {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		log.Println("appointmentdigestjob: MYSQL_DSN not set, skipping")
		return
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		log.Printf("appointmentdigestjob: db: %v", err)
		return
	}

	date := time.Now().Format("2006-01-02")
	if len(args) > 0 && args[0] != "" {
		date = args[0]
	}

	appts, err := apptRepo.NewAppointmentRepository(db).FindByDate(date)
	if err != nil {
		log.Printf("appointmentdigestjob: %v", err)
		return
	}
	log.Printf("appointmentdigestjob: %d appointment(s) on %s", len(appts), date)
	for _, a := range appts {
		log.Printf("  %s %s — %s (%s)", a.Date, a.Time, a.Name, a.Service)
	}
}
