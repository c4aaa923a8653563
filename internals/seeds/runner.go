package seeds

import (
	"fmt"
	"log"
	"os"

	siteModel "construction_backend/internals/features/sites/site/model"
	userModel "construction_backend/internals/features/users/user/model"
	workerModel "construction_backend/internals/features/workers/worker/model"

	"github.com/bytedance/sonic"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserSeed struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SiteSeed struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	UserEmail string `json:"user_email"`
}

type WorkerSeed struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	CI          string `json:"ci"`
	SiteName    string `json:"site_name"`
	SiteAddress string `json:"site_address"`
}

type SeedFile struct {
	Users   []UserSeed   `json:"users"`
	Sites   []SiteSeed   `json:"sites"`
	Workers []WorkerSeed `json:"workers"`
}

// RunAllSeeds loads filePath and inserts whatever is not there yet:
// users by email, sites by name+address, workers by ci.
func RunAllSeeds(db *gorm.DB, filePath string) error {
	log.Println("[INFO] Membaca file seed:", filePath)
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var data SeedFile
	if err := sonic.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("decode seed file: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users, err := seedUsers(tx, data.Users)
		if err != nil {
			return err
		}
		if err := seedSites(tx, data.Sites); err != nil {
			return err
		}
		workers, err := seedWorkers(tx, data.Workers)
		if err != nil {
			return err
		}
		log.Printf("[SUCCESS] Seed selesai: %d user, %d worker baru", users, workers)
		return nil
	})
}

func seedUsers(tx *gorm.DB, seeds []UserSeed) (int, error) {
	created := 0
	for _, s := range seeds {
		var n int64
		if err := tx.Model(&userModel.UserModel{}).Where("email = ?", s.Email).Count(&n).Error; err != nil {
			return created, err
		}
		if n > 0 {
			log.Printf("[INFO] User '%s' sudah ada, dilewati.", s.Email)
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, err
		}
		u := userModel.UserModel{Name: s.Name, Email: s.Email, Password: string(hash)}
		if err := tx.Create(&u).Error; err != nil {
			return created, fmt.Errorf("seed user %s: %w", s.Email, err)
		}
		created++
	}
	return created, nil
}

func seedSites(tx *gorm.DB, seeds []SiteSeed) error {
	for _, s := range seeds {
		var owner userModel.UserModel
		if err := tx.Where("email = ?", s.UserEmail).First(&owner).Error; err != nil {
			return fmt.Errorf("seed site %s: owner %s: %w", s.Name, s.UserEmail, err)
		}
		site := siteModel.SiteModel{Name: s.Name, Address: s.Address, UserID: owner.ID}
		err := tx.Omit(clause.Associations).
			Where(siteModel.SiteModel{Name: s.Name, Address: s.Address}).
			FirstOrCreate(&site).Error
		if err != nil {
			return fmt.Errorf("seed site %s: %w", s.Name, err)
		}
	}
	return nil
}

func seedWorkers(tx *gorm.DB, seeds []WorkerSeed) (int, error) {
	created := 0
	for _, s := range seeds {
		var site siteModel.SiteModel
		if err := tx.Where("name = ? AND address = ?", s.SiteName, s.SiteAddress).First(&site).Error; err != nil {
			return created, fmt.Errorf("seed worker %s: site %s: %w", s.CI, s.SiteName, err)
		}
		var n int64
		if err := tx.Model(&workerModel.WorkerModel{}).Where("ci = ?", s.CI).Count(&n).Error; err != nil {
			return created, err
		}
		if n > 0 {
			log.Printf("[INFO] Worker CI '%s' sudah ada, dilewati.", s.CI)
			continue
		}
		w := workerModel.WorkerModel{Name: s.Name, Role: s.Role, CI: s.CI, SiteID: site.ID}
		if err := tx.Omit(clause.Associations).Create(&w).Error; err != nil {
			return created, fmt.Errorf("seed worker %s: %w", s.CI, err)
		}
		created++
	}
	return created, nil
}
