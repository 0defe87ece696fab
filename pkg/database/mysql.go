package database

import (
	"encoding/json"
	"fmt"
	"log"

	"lechemin_backend/internal/config"
	"lechemin_backend/internal/model"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.ProgressRecord{},
		&model.SavedRoadmap{},
		&model.WaitlistEntry{},
		&model.PathModule{},
	)
	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedPathModules(db); err != nil {
		return nil, err
	}

	return db, nil
}

// ReseedPathModules wipes and reinserts the static path content. Only used
// by scripts/reseed_paths.go after the seed data changes.
func ReseedPathModules(db *gorm.DB) error {
	err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Unscoped().
		Delete(&model.PathModule{}).Error
	if err != nil {
		return err
	}
	return seedPathModules(db)
}

// seedPathModules inserts the static DevOps path on first boot.
func seedPathModules(db *gorm.DB) error {
	var count int64
	db.Model(&model.PathModule{}).Count(&count)
	if count > 0 {
		return nil
	}

	type seedResource struct {
		Type  string `json:"type"`
		Title string `json:"title"`
		URL   string `json:"url"`
	}

	mustJSON := func(v any) datatypes.JSON {
		b, _ := json.Marshal(v)
		return datatypes.JSON(b)
	}

	modules := []model.PathModule{
		{
			PathSlug: "devops", Slug: "linux-fondamentaux", Title: "Linux et ligne de commande",
			Goal: "Être à l'aise dans un terminal: fichiers, permissions, processus, scripting de base.",
			Level: model.LevelDebutant, OrderNum: 1,
			Skills:        mustJSON([]string{"Navigation shell", "Permissions", "Processus", "Bash scripting"}),
			Prerequisites: mustJSON([]string{}),
			Resources: mustJSON([]seedResource{
				{Type: "doc", Title: "The Linux Command Line", URL: "https://linuxcommand.org/tlcl.php"},
			}),
		},
		{
			PathSlug: "devops", Slug: "reseaux-web", Title: "Réseaux et web",
			Goal: "Comprendre TCP/IP, DNS, HTTP et TLS pour diagnostiquer ce qui se passe entre deux machines.",
			Level: model.LevelDebutant, OrderNum: 2,
			Skills:        mustJSON([]string{"TCP/IP", "DNS", "HTTP", "TLS"}),
			Prerequisites: mustJSON([]string{"linux-fondamentaux"}),
			Resources: mustJSON([]seedResource{
				{Type: "doc", Title: "MDN HTTP", URL: "https://developer.mozilla.org/fr/docs/Web/HTTP"},
			}),
		},
		{
			PathSlug: "devops", Slug: "git-ci", Title: "Git et intégration continue",
			Goal: "Versionner proprement et automatiser build + tests à chaque changement.",
			Level: model.LevelIntermediaire, OrderNum: 3,
			Skills:        mustJSON([]string{"Git branching", "Revues de code", "Pipelines CI"}),
			Prerequisites: mustJSON([]string{"linux-fondamentaux"}),
			Resources: mustJSON([]seedResource{
				{Type: "doc", Title: "Pro Git", URL: "https://git-scm.com/book/fr/v2"},
			}),
		},
		{
			PathSlug: "devops", Slug: "conteneurs", Title: "Conteneurs",
			Goal: "Construire, publier et exécuter des images Docker reproductibles.",
			Level: model.LevelIntermediaire, OrderNum: 4,
			Skills:        mustJSON([]string{"Images", "Dockerfile", "Compose", "Registries"}),
			Prerequisites: mustJSON([]string{"linux-fondamentaux", "reseaux-web"}),
			Resources: mustJSON([]seedResource{
				{Type: "doc", Title: "Docker docs", URL: "https://docs.docker.com/"},
			}),
		},
		{
			PathSlug: "devops", Slug: "orchestration", Title: "Orchestration Kubernetes",
			Goal: "Déployer et opérer des applications sur un cluster: déploiements, services, observabilité.",
			Level: model.LevelAvance, OrderNum: 5,
			Skills:        mustJSON([]string{"Pods & Deployments", "Services & Ingress", "Helm", "Monitoring"}),
			Prerequisites: mustJSON([]string{"conteneurs", "git-ci"}),
			Resources: mustJSON([]seedResource{
				{Type: "doc", Title: "Kubernetes docs", URL: "https://kubernetes.io/fr/docs/home/"},
			}),
		},
	}

	for i := range modules {
		if err := db.Create(&modules[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
