package migrations_test

import (
	"os"
	"path"

	"github.com/ahpgap/workforce-planner/internal/config"
	"github.com/ahpgap/workforce-planner/internal/store"
	"github.com/ahpgap/workforce-planner/pkg/migrations"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("migrations", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		cfg    *config.Config
	)

	BeforeAll(func() {
		var err error
		cfg, err = config.NewDefault()
		Expect(err).To(BeNil())
		cfg.Database.Type = store.TypeSqlite
		cfg.Database.Name = ":memory:"

		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
	})

	AfterAll(func() {
		s.Close()
	})

	Context("store migrations", Ordered, func() {
		It("fails to migrate the db -- migration folder does not exist", func() {
			cfg.Service.MigrationFolder = "some folder"
			err := migrations.MigrateStore(gormdb, cfg)
			Expect(err).NotTo(BeNil())
		})

		It("fails to migrate the db -- migration folder is a file", func() {
			currentFolder, err := os.Getwd()
			Expect(err).To(BeNil())
			cfg.Service.MigrationFolder = path.Join(currentFolder, "migrations.go")

			err = migrations.MigrateStore(gormdb, cfg)
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("is not a folder"))
		})

		It("successfully migrates the db from a folder", func() {
			currentFolder, err := os.Getwd()
			Expect(err).To(BeNil())
			cfg.Service.MigrationFolder = path.Join(currentFolder, "sql")

			err = migrations.MigrateStore(gormdb, cfg)
			Expect(err).To(BeNil())
			Expect(gormdb.Migrator().HasTable("scenario_runs")).To(BeTrue())
		})

		It("successfully migrates the db from the embedded migrations", func() {
			cfg.Service.MigrationFolder = ""

			err := migrations.MigrateStore(gormdb, cfg)
			Expect(err).To(BeNil())
			Expect(gormdb.Migrator().HasTable("scenario_runs")).To(BeTrue())
		})

		It("is idempotent", func() {
			cfg.Service.MigrationFolder = ""
			Expect(migrations.MigrateStore(gormdb, cfg)).To(Succeed())
			Expect(migrations.MigrateStore(gormdb, cfg)).To(Succeed())
		})

		AfterEach(func() {
			gormdb.Exec("DROP TABLE IF EXISTS scenario_runs;")
			gormdb.Exec("DROP TABLE IF EXISTS goose_db_version;")
		})
	})
})
