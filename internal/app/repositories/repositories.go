package repositories

// Repositories holds all the repository instances
type Repositories struct {
	CollegeRepository *CollegeRepository
	ProgramRepository *ProgramRepository
	StudentRepository *StudentRepository
	UserRepository    *UserRepository
	StatsRepository   *StatsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db Pool) *Repositories {
	return &Repositories{
		CollegeRepository: NewCollegeRepository(db),
		ProgramRepository: NewProgramRepository(db),
		StudentRepository: NewStudentRepository(db),
		UserRepository:    NewUserRepository(db),
		StatsRepository:   NewStatsRepository(db),
	}
}
