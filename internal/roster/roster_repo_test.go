package roster

import (
	"path/filepath"
	"testing"

	moderncSqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "roster.db")
	db, err := gorm.Open(moderncSqlite.New(moderncSqlite.Config{
		DSN:        dsn,
		DriverName: "sqlite",
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&Team{}, &Player{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCreateAndLoadTeam(t *testing.T) {
	repo := NewGormRosterRepository(openTestDB(t))

	team := &Team{Name: "Gully XI", Players: []Player{
		{Name: "Opener", BattingOrder: 2},
		{Name: "Captain", BattingOrder: 1, IsCaptain: true},
	}}
	if err := repo.CreateTeam(team); err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}

	loaded, err := repo.GetTeamByID(team.ID)
	if err != nil {
		t.Fatalf("GetTeamByID: %v", err)
	}
	if loaded == nil {
		t.Fatalf("created team not found")
	}
	if len(loaded.Players) != 2 {
		t.Fatalf("players = %d, want 2", len(loaded.Players))
	}
	// Batting-card order, not insertion order.
	if loaded.Players[0].Name != "Captain" || loaded.Players[1].Name != "Opener" {
		t.Fatalf("player order: %s, %s", loaded.Players[0].Name, loaded.Players[1].Name)
	}
	if !loaded.HasPlayer(loaded.Players[0].ID) {
		t.Fatalf("HasPlayer missed a rostered player")
	}
	if loaded.HasPlayer(4242) {
		t.Fatalf("HasPlayer matched a stranger")
	}
}

func TestGetTeamByIDMissing(t *testing.T) {
	repo := NewGormRosterRepository(openTestDB(t))

	team, err := repo.GetTeamByID(4242)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if team != nil {
		t.Fatalf("expected nil for a missing team")
	}
}

func TestDeleteTeamRemovesPlayers(t *testing.T) {
	repo := NewGormRosterRepository(openTestDB(t))

	team := &Team{Name: "Gully XI", Players: []Player{{Name: "One", BattingOrder: 1}, {Name: "Two", BattingOrder: 2}}}
	if err := repo.CreateTeam(team); err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	if err := repo.DeleteTeam(team.ID); err != nil {
		t.Fatalf("DeleteTeam: %v", err)
	}

	gone, err := repo.GetTeamByID(team.ID)
	if err != nil {
		t.Fatalf("GetTeamByID: %v", err)
	}
	if gone != nil {
		t.Fatalf("team still present after delete")
	}
}

func TestAddPlayerExtendsRoster(t *testing.T) {
	repo := NewGormRosterRepository(openTestDB(t))

	team := &Team{Name: "Gully XI", Players: []Player{{Name: "One", BattingOrder: 1}, {Name: "Two", BattingOrder: 2}}}
	if err := repo.CreateTeam(team); err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}

	if err := repo.AddPlayer(&Player{Name: "Three", TeamID: team.ID, BattingOrder: 3}); err != nil {
		t.Fatalf("AddPlayer: %v", err)
	}

	loaded, _ := repo.GetTeamByID(team.ID)
	if len(loaded.Players) != 3 || loaded.Players[2].Name != "Three" {
		t.Fatalf("roster after AddPlayer: %+v", loaded.Players)
	}
}
