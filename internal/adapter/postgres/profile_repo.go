package postgres

import (
	"context"
	"database/sql"
	"errors"

	"fitplan/internal/domain"
)

// GetProfile returns the user's profile or nil when none exists.
func (d *DB) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	var (
		p      domain.Profile
		age    sql.NullInt32
		gender sql.NullString
		height sql.NullFloat64
		weight sql.NullFloat64
		target sql.NullFloat64
		cals   sql.NullInt32
	)
	err := d.sql.QueryRowContext(ctx,
		`SELECT user_id, full_name, age, gender, height_cm, current_weight, target_weight,
		        activity_level, goal_type, daily_calories, updated_at
		   FROM profiles WHERE user_id = $1;`,
		userID,
	).Scan(&p.UserID, &p.FullName, &age, &gender, &height, &weight, &target,
		&p.ActivityLevel, &p.GoalType, &cals, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if age.Valid {
		v := int(age.Int32)
		p.Age = &v
	}
	if gender.Valid {
		g := domain.Gender(gender.String)
		p.Gender = &g
	}
	if height.Valid {
		p.HeightCm = &height.Float64
	}
	if weight.Valid {
		p.CurrentWeight = &weight.Float64
	}
	if target.Valid {
		p.TargetWeight = &target.Float64
	}
	if cals.Valid {
		v := int(cals.Int32)
		p.DailyCalories = &v
	}
	return &p, nil
}

// UpsertProfile inserts or replaces the user's profile.
func (d *DB) UpsertProfile(ctx context.Context, p domain.Profile) error {
	var gender *string
	if p.Gender != nil {
		g := string(*p.Gender)
		gender = &g
	}
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO profiles (user_id, full_name, age, gender, height_cm, current_weight, target_weight,
		                       activity_level, goal_type, daily_calories, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (user_id) DO UPDATE SET
		   full_name = EXCLUDED.full_name,
		   age = EXCLUDED.age,
		   gender = EXCLUDED.gender,
		   height_cm = EXCLUDED.height_cm,
		   current_weight = EXCLUDED.current_weight,
		   target_weight = EXCLUDED.target_weight,
		   activity_level = EXCLUDED.activity_level,
		   goal_type = EXCLUDED.goal_type,
		   daily_calories = EXCLUDED.daily_calories,
		   updated_at = EXCLUDED.updated_at;`,
		p.UserID, p.FullName, p.Age, gender, p.HeightCm, p.CurrentWeight, p.TargetWeight,
		string(p.ActivityLevel), string(p.GoalType), p.DailyCalories, p.UpdatedAt.UTC(),
	)
	return err
}
