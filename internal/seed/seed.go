package seed

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appModels "github.com/yigit/registrar/internal/app/models"
	appRepos "github.com/yigit/registrar/internal/app/repositories"
	"github.com/yigit/registrar/internal/db"
	"github.com/yigit/registrar/internal/pkg/auth"
)

// Colleges are the default colleges.
var Colleges = []appModels.College{
	{CollegeCode: "CCS", CollegeName: "College of Computer Studies"},
	{CollegeCode: "CBA", CollegeName: "College of Business Administration"},
	{CollegeCode: "COE", CollegeName: "College of Engineering"},
	{CollegeCode: "CAS", CollegeName: "College of Arts and Sciences"},
	{CollegeCode: "CON", CollegeName: "College of Nursing"},
	{CollegeCode: "CED", CollegeName: "College of Education"},
	{CollegeCode: "COT", CollegeName: "College of Technology"},
}

// Programs are the default programs, each assigned to one of Colleges.
var Programs = []appModels.Program{
	program("BSCS", "Bachelor of Science in Computer Science", "CCS"),
	program("BSIT", "Bachelor of Science in Information Technology", "CCS"),
	program("BSBA", "Bachelor of Science in Business Administration", "CBA"),
	program("BSA", "Bachelor of Science in Accountancy", "CBA"),
	program("BSEE", "Bachelor of Science in Electrical Engineering", "COE"),
	program("BSME", "Bachelor of Science in Mechanical Engineering", "COE"),
	program("BSCE", "Bachelor of Science in Civil Engineering", "COE"),
	program("BSBIO", "Bachelor of Science in Biology", "CAS"),
	program("BSCHEM", "Bachelor of Science in Chemistry", "CAS"),
	program("BSN", "Bachelor of Science in Nursing", "CON"),
	program("BSED", "Bachelor of Secondary Education", "CED"),
	program("BEED", "Bachelor of Elementary Education", "CED"),
	program("BSECE", "Bachelor of Science in Electronics Engineering", "COE"),
	program("BSARCH", "Bachelor of Science in Architecture", "COE"),
	program("BSTM", "Bachelor of Science in Tourism Management", "CBA"),
	program("BSPsych", "Bachelor of Science in Psychology", "CAS"),
	program("BSPolSci", "Bachelor of Arts in Political Science", "CAS"),
	program("BSPubAd", "Bachelor of Public Administration", "CBA"),
	program("BSCrim", "Bachelor of Science in Criminology", "CAS"),
	program("BSMath", "Bachelor of Science in Mathematics", "CAS"),
	program("BSCpE", "Bachelor of Science in Computer Engineering", "COE"),
	program("BSStat", "Bachelor of Science in Statistics", "CAS"),
	program("BSAgri", "Bachelor of Science in Agriculture", "CAS"),
	program("BSForestry", "Bachelor of Science in Forestry", "CAS"),
	program("BSMarE", "Bachelor of Science in Marine Engineering", "COE"),
	program("BSMarBio", "Bachelor of Science in Marine Biology", "CAS"),
	program("BSPharma", "Bachelor of Science in Pharmacy", "CON"),
	program("BSRadTech", "Bachelor of Science in Radiologic Technology", "CON"),
	program("BSMedTech", "Bachelor of Science in Medical Technology", "CON"),
}

var (
	firstNames = []string{
		"Maria", "Jose", "Angelo", "Andrea", "Paolo", "Bea", "Carlo", "Danica", "Enzo", "Francine",
		"Gabriel", "Hannah", "Isaac", "Jasmine", "Kevin", "Lea", "Miguel", "Nicole", "Oscar", "Patricia",
	}
	lastNames = []string{
		"Santos", "Reyes", "Cruz", "Bautista", "Garcia", "Mendoza", "Torres", "Flores", "Ramos", "Aquino",
		"Navarro", "Villanueva", "Castillo", "Dela Cruz", "Fernandez", "Lopez", "Gonzales", "Rivera", "Morales", "Salazar",
	}
	genders = []string{"Male", "Female"}
)

func program(code, name, college string) appModels.Program {
	return appModels.Program{ProgramCode: code, ProgramName: name, CollegeCode: &college}
}

// Options controls what Run inserts.
type Options struct {
	Students   int
	RandomSeed int64
	// The admin account is skipped when AdminPassword is empty.
	AdminUsername string
	AdminEmail    string
	AdminPassword string
	// BcryptCost overrides auth.BcryptCost when positive.
	BcryptCost int
}

// Summary reports how many rows Run inserted. Rows that already existed are not counted.
type Summary struct {
	Colleges int64
	Programs int64
	Students int64
	Admin    bool
}

// GenerateStudents returns n students with unique IDs in the YYYY-NNNN format. The same
// seed always yields the same students.
func GenerateStudents(n int, seed int64) []appModels.Student {
	rng := rand.New(rand.NewPCG(uint64(seed), 0x5eed))
	used := make(map[string]struct{}, n)
	students := make([]appModels.Student, 0, n)

	for len(students) < n {
		id := fmt.Sprintf("%d-%04d", 2018+rng.IntN(8), 1000+rng.IntN(9000))
		if _, dup := used[id]; dup {
			continue
		}
		used[id] = struct{}{}

		programCode := Programs[rng.IntN(len(Programs))].ProgramCode
		students = append(students, appModels.Student{
			StudentID:   id,
			FirstName:   firstNames[rng.IntN(len(firstNames))],
			LastName:    lastNames[rng.IntN(len(lastNames))],
			ProgramCode: &programCode,
			YearLevel:   1 + rng.IntN(5),
			Gender:      genders[rng.IntN(len(genders))],
		})
	}
	return students
}

// Run inserts the default colleges, programs, generated students and the admin account in
// one transaction. Existing rows are left untouched, so Run can be repeated.
func Run(ctx context.Context, pool appRepos.Pool, opts Options, lgr zerolog.Logger) (Summary, error) {
	var summary Summary
	sb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	err := db.WithTransaction(ctx, pool, func(ctx context.Context, tx pgx.Tx) error {
		colleges := sb.Insert("colleges").Columns("college_code", "college_name")
		for _, c := range Colleges {
			colleges = colleges.Values(c.CollegeCode, c.CollegeName)
		}
		n, err := execInsert(ctx, tx, colleges)
		if err != nil {
			return fmt.Errorf("error seeding colleges: %w", err)
		}
		summary.Colleges = n

		programs := sb.Insert("programs").Columns("program_code", "program_name", "college_code")
		for _, p := range Programs {
			programs = programs.Values(p.ProgramCode, p.ProgramName, p.CollegeCode)
		}
		if n, err = execInsert(ctx, tx, programs); err != nil {
			return fmt.Errorf("error seeding programs: %w", err)
		}
		summary.Programs = n

		if opts.Students > 0 {
			students := sb.Insert("students").
				Columns("student_id", "first_name", "last_name", "program_code", "year_level", "gender")
			for _, s := range GenerateStudents(opts.Students, opts.RandomSeed) {
				students = students.Values(s.StudentID, s.FirstName, s.LastName, s.ProgramCode, s.YearLevel, s.Gender)
			}
			if n, err = execInsert(ctx, tx, students); err != nil {
				return fmt.Errorf("error seeding students: %w", err)
			}
			summary.Students = n
		}

		if opts.AdminPassword == "" {
			return nil
		}
		created, err := seedAdmin(ctx, appRepos.NewUserRepository(tx), opts)
		if err != nil {
			return err
		}
		summary.Admin = created
		return nil
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Seeding failed")
		return Summary{}, err
	}

	lgr.Info().
		Int64("colleges", summary.Colleges).
		Int64("programs", summary.Programs).
		Int64("students", summary.Students).
		Bool("admin", summary.Admin).
		Msg("Database seeded")
	return summary, nil
}

func execInsert(ctx context.Context, tx pgx.Tx, insert squirrel.InsertBuilder) (int64, error) {
	query, args, err := insert.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func seedAdmin(ctx context.Context, users *appRepos.UserRepository, opts Options) (bool, error) {
	exists, err := users.EmailExists(ctx, opts.AdminEmail)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	cost := opts.BcryptCost
	if cost <= 0 {
		cost = auth.BcryptCost
	}
	hash, err := auth.HashPasswordWithCost(opts.AdminPassword, cost)
	if err != nil {
		return false, fmt.Errorf("error hashing admin password: %w", err)
	}

	admin := &appModels.User{Username: opts.AdminUsername, Email: opts.AdminEmail, PasswordHash: hash}
	if err := users.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("error seeding admin user: %w", err)
	}
	return true, nil
}
