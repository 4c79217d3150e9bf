// Package seed loads facility fixtures from TOML and creates the missing ones.
package seed

import (
	"context"
	"log/slog"

	"facility-booking/internal/domain/facility"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
)

type File struct {
	Facilities []Facility `toml:"facilities"`
}

type Facility struct {
	Name        string `toml:"name"`
	Location    string `toml:"location"`
	Description string `toml:"description"`
	Capacity    int    `toml:"capacity"`
	Active      *bool  `toml:"active"`
	OpensAt     string `toml:"opens_at"`
	ClosesAt    string `toml:"closes_at"`
}

// Result counts facilities created and those skipped because the name exists.
type Result struct {
	Created int
	Skipped int
}

// seedActor is the synthetic staff identity the seed runs as.
var seedActor = user.NewActor(uuid.Nil, user.RoleStaff)

func Load(path string) (File, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return File{}, errs.Wrapf(err, "failed to decode seed file %s", path)
	}
	return f, nil
}

func Parse(data string) (File, error) {
	var f File
	if _, err := toml.Decode(data, &f); err != nil {
		return File{}, errs.Wrap(err, "failed to decode seed data")
	}
	return f, nil
}

func (f Facility) ToCommand() (commands.FacilityRequest, error) {
	req := commands.FacilityRequest{
		Name:        f.Name,
		Location:    f.Location,
		Description: f.Description,
		Capacity:    f.Capacity,
		Active:      true,
	}
	if f.Active != nil {
		req.Active = *f.Active
	}

	switch {
	case f.OpensAt == "" && f.ClosesAt == "":
	case f.OpensAt == "" || f.ClosesAt == "":
		return commands.FacilityRequest{}, errs.Wrapf(facility.ErrInvalidOpeningHours, "facility %q", f.Name)
	default:
		opens, err := facility.ParseTimeOfDay(f.OpensAt)
		if err != nil {
			return commands.FacilityRequest{}, errs.Wrapf(err, "facility %q", f.Name)
		}
		closes, err := facility.ParseTimeOfDay(f.ClosesAt)
		if err != nil {
			return commands.FacilityRequest{}, errs.Wrapf(err, "facility %q", f.Name)
		}
		hours, err := facility.NewOpeningHours(opens, closes)
		if err != nil {
			return commands.FacilityRequest{}, errs.Wrapf(err, "facility %q", f.Name)
		}
		req.Hours = &hours
	}
	return req, nil
}

// Apply creates every facility whose exact name is not registered yet, so the
// seed can be rerun.
func Apply(ctx context.Context, cmds commands.FacilityCommands, q queries.FacilityQueries, f File) (Result, error) {
	var res Result
	for _, fac := range f.Facilities {
		exists, err := nameExists(ctx, q, fac.Name)
		if err != nil {
			return res, err
		}
		if exists {
			res.Skipped++
			slog.Info("facility already seeded", "name", fac.Name)
			continue
		}

		req, err := fac.ToCommand()
		if err != nil {
			return res, err
		}
		created, err := cmds.Create(ctx, seedActor, req)
		if err != nil {
			return res, errs.Wrapf(err, "failed to create facility %q", fac.Name)
		}
		res.Created++
		slog.Info("facility seeded", "name", fac.Name, "facility_id", created.FacilityID.String())
	}
	return res, nil
}

func nameExists(ctx context.Context, q queries.FacilityQueries, name string) (bool, error) {
	views, err := q.List(ctx, seedActor, queries.FacilityFilters{NameContains: &name})
	if err != nil {
		return false, errs.Wrapf(err, "failed to look up facility %q", name)
	}
	for _, v := range views {
		if v.Name == name {
			return true, nil
		}
	}
	return false, nil
}
