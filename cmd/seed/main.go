package main

import (
	"github.com/zephyra-admin/internal/config"
	"github.com/zephyra-admin/internal/constants"
	"github.com/zephyra-admin/internal/logger"
	"github.com/zephyra-admin/internal/models"
	"github.com/zephyra-admin/internal/repository"
	"github.com/zephyra-admin/internal/service"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, cfg.Server.Mode, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	db := models.DB
	memberRepo := repository.NewTeamMemberRepository(db)
	postRepo := repository.NewBlogPostRepository(db)
	members := service.NewTeamMemberService(memberRepo, postRepo)
	posts := service.NewBlogPostService(postRepo, memberRepo)
	projects := service.NewProjectService(repository.NewProjectRepository(db), repository.NewProjectAchievementRepository(db))
	offerings := service.NewOfferingService(repository.NewOfferingRepository(db))
	clients := service.NewClientService(repository.NewClientRepository(db))
	alliances := service.NewAllianceService(repository.NewAllianceRepository(db))

	var existing int64
	if err := db.Unscoped().Model(&models.TeamMember{}).Count(&existing).Error; err != nil {
		stdLog.Fatalf("Failed to inspect team members: %v", err)
	}
	if existing > 0 {
		stdLog.Printf("Demo content already present, skipped")
		return
	}

	visible := true
	// 团队
	teamInputs := []service.TeamMemberInput{
		{Name: "Ana García", Role: "Directora general", Specialty: "Estrategia energética", IsVisible: &visible},
		{Name: "Luis Romero", Role: "Ingeniero jefe", Specialty: "Fotovoltaica", IsVisible: &visible},
		{Name: "Marta Vidal", Role: "Consultora", Specialty: "Economía circular", IsVisible: &visible},
	}
	var authorID uint
	for _, input := range teamInputs {
		member, err := members.Create(input)
		if err != nil {
			stdLog.Printf("Failed to create team member %s: %v", input.Name, err)
			continue
		}
		if authorID == 0 {
			authorID = member.ID
		}
		stdLog.Printf("Created team member: %s", member.Name)
	}

	// 博客
	if authorID != 0 {
		postInputs := []service.BlogPostInput{
			{
				Title:    "Economía circular en la industria",
				Excerpt:  "Cómo cerrar el ciclo de materiales en plantas industriales.",
				Content:  "<p>La economía circular reduce residuos y costes.</p>",
				AuthorID: authorID,
				Status:   constants.PostStatusPublished,
			},
			{
				Title:    "Autoconsumo solar para pymes",
				Excerpt:  "Guía práctica de instalación y amortización.",
				Content:  "<p>El autoconsumo se amortiza en pocos años.</p>",
				AuthorID: authorID,
			},
		}
		for _, input := range postInputs {
			post, err := posts.Create(input)
			if err != nil {
				stdLog.Printf("Failed to create post %s: %v", input.Title, err)
				continue
			}
			stdLog.Printf("Created post: %s", post.Slug)
		}
	}

	// 项目
	featured := true
	projectInputs := []service.ProjectInput{
		{
			Title:        "Parque Solar Almería",
			Excerpt:      "Planta fotovoltaica de 50 MW.",
			Description:  "Diseño y dirección de obra de una planta fotovoltaica.",
			IsFeatured:   &featured,
			Achievements: []string{"50 MW instalados", "Reducción de 40.000 t de CO2 al año"},
		},
		{
			Title:        "Rehabilitación energética Bilbao",
			Excerpt:      "Mejora de la envolvente en 120 viviendas.",
			Description:  "Auditoría y rehabilitación energética de un barrio.",
			Achievements: []string{"Ahorro energético del 60%"},
		},
	}
	for _, input := range projectInputs {
		project, err := projects.Create(input)
		if err != nil {
			stdLog.Printf("Failed to create project %s: %v", input.Title, err)
			continue
		}
		stdLog.Printf("Created project: %s", project.Slug)
	}

	// 服务
	active := true
	for _, input := range []service.OfferingInput{
		{Title: "Consultoría energética", Description: "Auditorías y planes de eficiencia.", IconName: "bolt", IsActive: &active},
		{Title: "Ingeniería renovable", Description: "Proyectos solares y eólicos llave en mano.", IconName: "sun", IsActive: &active},
		{Title: "Sostenibilidad corporativa", Description: "Informes ESG y huella de carbono.", IconName: "leaf", IsActive: &active},
	} {
		if _, err := offerings.Create(input); err != nil {
			stdLog.Printf("Failed to create service %s: %v", input.Title, err)
		}
	}

	// 客户与合作伙伴
	for _, input := range []service.LogoInput{{Name: "Iberdrola"}, {Name: "Acciona"}} {
		if _, err := clients.Create(input); err != nil {
			stdLog.Printf("Failed to create client %s: %v", input.Name, err)
		}
	}
	for _, input := range []service.LogoInput{{Name: "Cluster de Energía"}, {Name: "Green Building Council"}} {
		if _, err := alliances.Create(input); err != nil {
			stdLog.Printf("Failed to create alliance %s: %v", input.Name, err)
		}
	}

	stdLog.Printf("Seed completed")
}
