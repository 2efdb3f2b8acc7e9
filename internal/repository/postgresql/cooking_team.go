package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/db"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/repository"
	"gitlab.ozon.dev/pupkingeorgij/dinnerclub/internal/storage"
)

type CookingTeamRepo struct {
	db db.DB
}

func NewCookingTeamRepo(db db.DB) storage.CookingTeamRepository {
	return &CookingTeamRepo{db: db}
}

func (r *CookingTeamRepo) CreateBatchTx(ctx context.Context, tx db.Tx, teams []*repository.CookingTeam) error {
	const width = 3
	for _, c := range chunks(len(teams), width) {
		part := teams[c[0]:c[1]]
		args := make([]interface{}, 0, len(part)*width)
		for _, t := range part {
			args = append(args, t.SeasonID, t.Name, nullJSON(t.Affinity))
		}
		var ids []int64
		err := tx.Select(ctx, &ids, `
            INSERT INTO cooking_teams (season_id, name, affinity)
            VALUES `+valuesClause(len(part), width)+`
            RETURNING id
        `, args...)
		if err != nil {
			return fmt.Errorf("insert cooking teams: %w", err)
		}
		if len(ids) != len(part) {
			return fmt.Errorf("insert cooking teams: got %d ids for %d rows", len(ids), len(part))
		}
		for i, id := range ids {
			part[i].ID = id
		}
	}
	return nil
}

func (r *CookingTeamRepo) CreateAssignmentsTx(ctx context.Context, tx db.Tx, assignments []*repository.CookingTeamAssignment) error {
	const width = 5
	for _, c := range chunks(len(assignments), width) {
		part := assignments[c[0]:c[1]]
		args := make([]interface{}, 0, len(part)*width)
		for _, a := range part {
			args = append(args, a.CookingTeamID, a.InhabitantID, a.Role, a.AllocationPercentage, nullJSON(a.AffinityOverride))
		}
		var ids []int64
		err := tx.Select(ctx, &ids, `
            INSERT INTO cooking_team_assignments (cooking_team_id, inhabitant_id, role, allocation_percentage, affinity_override)
            VALUES `+valuesClause(len(part), width)+`
            RETURNING id
        `, args...)
		if err != nil {
			return fmt.Errorf("insert team assignments: %w", err)
		}
		if len(ids) != len(part) {
			return fmt.Errorf("insert team assignments: got %d ids for %d rows", len(ids), len(part))
		}
		for i, id := range ids {
			part[i].ID = id
		}
	}
	return nil
}

func (r *CookingTeamRepo) GetBySeason(ctx context.Context, seasonID int64) ([]*repository.CookingTeam, error) {
	var teams []*repository.CookingTeam
	err := r.db.Select(ctx, &teams, "SELECT id, season_id, name, affinity FROM cooking_teams WHERE season_id = $1 ORDER BY id", seasonID)
	return teams, err
}

func (r *CookingTeamRepo) GetBySeasonTx(ctx context.Context, tx db.Tx, seasonID int64) ([]*repository.CookingTeam, error) {
	var teams []*repository.CookingTeam
	err := tx.Select(ctx, &teams, "SELECT id, season_id, name, affinity FROM cooking_teams WHERE season_id = $1 ORDER BY id FOR UPDATE", seasonID)
	return teams, err
}

func (r *CookingTeamRepo) GetAssignmentsBySeason(ctx context.Context, seasonID int64) ([]*repository.CookingTeamAssignment, error) {
	var assignments []*repository.CookingTeamAssignment
	err := r.db.Select(ctx, &assignments, `
        SELECT a.id, a.cooking_team_id, a.inhabitant_id, a.role, a.allocation_percentage, a.affinity_override
        FROM cooking_team_assignments a
        JOIN cooking_teams t ON t.id = a.cooking_team_id
        WHERE t.season_id = $1
        ORDER BY a.cooking_team_id, a.id
    `, seasonID)
	return assignments, err
}

func (r *CookingTeamRepo) UpdateAffinityTx(ctx context.Context, tx db.Tx, id int64, affinity json.RawMessage) error {
	tag, err := tx.Exec(ctx, "UPDATE cooking_teams SET affinity = $1 WHERE id = $2", nullJSON(affinity), id)
	if err != nil {
		return fmt.Errorf("update affinity of team %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// nullJSON sends an empty raw message as SQL NULL instead of an invalid
// zero-length jsonb value.
func nullJSON(raw json.RawMessage) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return []byte(raw)
}
