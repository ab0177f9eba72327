package service

import (
	"errors"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/repository"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"gorm.io/gorm"
)

// RatingPoint is one attempt of the requesting user, placed in time.
type RatingPoint struct {
	CompanyID       uint    `json:"company_id"`
	QuizIDInCompany uint    `json:"quiz_id_in_company"`
	AverageResult   float64 `json:"average_result"`
	PassDate        string  `json:"pass_date"`
}

// MemberRatingPoint is one attempt of a company member, addressed by
// the member's per-company id rather than the global user id.
type MemberRatingPoint struct {
	CompanyMemberID uint    `json:"company_member_id"`
	QuizIDInCompany uint    `json:"quiz_id_in_company"`
	AverageResult   float64 `json:"average_result"`
	PassDate        string  `json:"pass_date"`
}

// QuizPassage records when the user last took a quiz.
type QuizPassage struct {
	CompanyID       uint   `json:"company_id"`
	QuizIDInCompany uint   `json:"quiz_id_in_company"`
	LastPassDate    string `json:"last_pass_date"`
}

// MemberPassage records when a company member last took a quiz.
type MemberPassage struct {
	CompanyMemberID uint   `json:"company_member_id"`
	QuizIDInCompany uint   `json:"quiz_id_in_company"`
	LastPassDate    string `json:"last_pass_date"`
}

// ResultsReader is the query side of the results store.
type ResultsReader interface {
	FindAll(filter repository.ResultsFilter) ([]model.QuizResult, error)
	Average(filter repository.ResultsFilter) (float64, bool, error)
}

// QuizLookup resolves internal quiz record ids to their per-company
// display coordinates.
type QuizLookup interface {
	FindByRecordIDs(quizRecordIDs []uint) ([]model.Quiz, error)
}

// MemberLookup resolves company membership for analytics addressing.
type MemberLookup interface {
	FindAllByCompany(companyID uint) ([]model.MemberRecord, error)
	FindByCompanyAndMemberID(companyID, companyMemberID uint) (*model.MemberRecord, error)
}

type AnalyticsService struct {
	Results ResultsReader
	Quizzes QuizLookup
	Members MemberLookup
}

func NewAnalyticsService(results ResultsReader, quizzes QuizLookup, members MemberLookup) *AnalyticsService {
	return &AnalyticsService{Results: results, Quizzes: quizzes, Members: members}
}

// OverallRating is the user's mean stored average across every company,
// re-rounded with the legacy correction.
func (s *AnalyticsService) OverallRating(userID uint) (float64, error) {
	average, found, err := s.Results.Average(repository.ResultsFilter{UserID: userID})
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, util.ErrNoResults
	}
	return correctRounding(roundTwo(average)), nil
}

// MyRatingDynamics lists every attempt of the user with its running
// average and pass date, oldest first.
func (s *AnalyticsService) MyRatingDynamics(userID uint) ([]RatingPoint, error) {
	results, err := s.Results.FindAll(repository.ResultsFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	coords, err := s.quizCoordinates(results)
	if err != nil {
		return nil, err
	}

	points := make([]RatingPoint, 0, len(results))
	for _, result := range results {
		quiz := coords[result.QuizRecordID]
		points = append(points, RatingPoint{
			CompanyID:       result.CompanyID,
			QuizIDInCompany: quiz.QuizIDInCompany,
			AverageResult:   result.AverageResult,
			PassDate:        result.PassDate,
		})
	}
	return points, nil
}

// QuizzesPassed lists each quiz the user ever took with the most recent
// pass date. Pass dates use a fixed sortable layout, so the latest per
// quiz can be picked by string comparison.
func (s *AnalyticsService) QuizzesPassed(userID uint) ([]QuizPassage, error) {
	results, err := s.Results.FindAll(repository.ResultsFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	coords, err := s.quizCoordinates(results)
	if err != nil {
		return nil, err
	}

	latest := map[uint]string{}
	var order []uint
	for _, result := range results {
		last, seen := latest[result.QuizRecordID]
		if !seen {
			order = append(order, result.QuizRecordID)
		}
		if !seen || result.PassDate > last {
			latest[result.QuizRecordID] = result.PassDate
		}
	}

	passages := make([]QuizPassage, 0, len(order))
	for _, recordID := range order {
		quiz := coords[recordID]
		passages = append(passages, QuizPassage{
			CompanyID:       quiz.CompanyID,
			QuizIDInCompany: quiz.QuizIDInCompany,
			LastPassDate:    latest[recordID],
		})
	}
	return passages, nil
}

// MembersRatingDynamics lists every attempt inside the company, each
// attributed to the member's per-company id.
func (s *AnalyticsService) MembersRatingDynamics(companyID uint) ([]MemberRatingPoint, error) {
	results, err := s.Results.FindAll(repository.ResultsFilter{CompanyID: companyID})
	if err != nil {
		return nil, err
	}
	return s.memberPoints(companyID, results)
}

// MemberRatingDynamics narrows the dynamics to one member.
func (s *AnalyticsService) MemberRatingDynamics(companyID, companyMemberID uint) ([]MemberRatingPoint, error) {
	member, err := s.Members.FindByCompanyAndMemberID(companyID, companyMemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMemberNotFound
		}
		return nil, err
	}

	results, err := s.Results.FindAll(repository.ResultsFilter{UserID: member.UserID, CompanyID: companyID})
	if err != nil {
		return nil, err
	}
	return s.memberPoints(companyID, results)
}

// MembersPassed lists, per member and quiz, the most recent pass date
// inside the company.
func (s *AnalyticsService) MembersPassed(companyID uint) ([]MemberPassage, error) {
	results, err := s.Results.FindAll(repository.ResultsFilter{CompanyID: companyID})
	if err != nil {
		return nil, err
	}

	coords, err := s.quizCoordinates(results)
	if err != nil {
		return nil, err
	}
	memberIDs, err := s.memberIDsByUser(companyID)
	if err != nil {
		return nil, err
	}

	type pair struct {
		member uint
		quiz   uint
	}
	latest := map[pair]string{}
	var order []pair
	for _, result := range results {
		memberID, ok := memberIDs[result.UserID]
		if !ok {
			// The user has since left the company; the row stays but no
			// longer maps to a member.
			continue
		}
		p := pair{member: memberID, quiz: result.QuizRecordID}
		last, seen := latest[p]
		if !seen {
			order = append(order, p)
		}
		if !seen || result.PassDate > last {
			latest[p] = result.PassDate
		}
	}

	passages := make([]MemberPassage, 0, len(order))
	for _, p := range order {
		passages = append(passages, MemberPassage{
			CompanyMemberID: p.member,
			QuizIDInCompany: coords[p.quiz].QuizIDInCompany,
			LastPassDate:    latest[p],
		})
	}
	return passages, nil
}

func (s *AnalyticsService) memberPoints(companyID uint, results []model.QuizResult) ([]MemberRatingPoint, error) {
	coords, err := s.quizCoordinates(results)
	if err != nil {
		return nil, err
	}
	memberIDs, err := s.memberIDsByUser(companyID)
	if err != nil {
		return nil, err
	}

	points := make([]MemberRatingPoint, 0, len(results))
	for _, result := range results {
		memberID, ok := memberIDs[result.UserID]
		if !ok {
			continue
		}
		points = append(points, MemberRatingPoint{
			CompanyMemberID: memberID,
			QuizIDInCompany: coords[result.QuizRecordID].QuizIDInCompany,
			AverageResult:   result.AverageResult,
			PassDate:        result.PassDate,
		})
	}
	return points, nil
}

func (s *AnalyticsService) memberIDsByUser(companyID uint) (map[uint]uint, error) {
	members, err := s.Members.FindAllByCompany(companyID)
	if err != nil {
		return nil, err
	}
	ids := make(map[uint]uint, len(members))
	for _, member := range members {
		ids[member.UserID] = member.CompanyMemberID
	}
	return ids, nil
}

func (s *AnalyticsService) quizCoordinates(results []model.QuizResult) (map[uint]model.Quiz, error) {
	seen := map[uint]bool{}
	var recordIDs []uint
	for _, result := range results {
		if !seen[result.QuizRecordID] {
			seen[result.QuizRecordID] = true
			recordIDs = append(recordIDs, result.QuizRecordID)
		}
	}

	quizzes, err := s.Quizzes.FindByRecordIDs(recordIDs)
	if err != nil {
		return nil, err
	}
	coords := make(map[uint]model.Quiz, len(quizzes))
	for _, quiz := range quizzes {
		coords[quiz.QuizRecordID] = quiz
	}
	return coords, nil
}
