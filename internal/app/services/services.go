package services

// Services defined in this package:
// - CollegeService, ProgramService, StudentService: registry CRUD, listing and cascades
// - StatsService: dashboard aggregates
// - AuthService: signup, login and the current user
// - UserService: account administration
