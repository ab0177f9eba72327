package service

import (
	"testing"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeQuizLookup struct {
	quizzes []model.Quiz
}

func (f *fakeQuizLookup) FindByRecordIDs(quizRecordIDs []uint) ([]model.Quiz, error) {
	var matched []model.Quiz
	for _, quiz := range f.quizzes {
		for _, id := range quizRecordIDs {
			if quiz.QuizRecordID == id {
				matched = append(matched, quiz)
			}
		}
	}
	return matched, nil
}

type fakeMemberLookup struct {
	members []model.MemberRecord
}

func (f *fakeMemberLookup) FindAllByCompany(companyID uint) ([]model.MemberRecord, error) {
	var matched []model.MemberRecord
	for _, member := range f.members {
		if member.CompanyID == companyID {
			matched = append(matched, member)
		}
	}
	return matched, nil
}

func (f *fakeMemberLookup) FindByCompanyAndMemberID(companyID, companyMemberID uint) (*model.MemberRecord, error) {
	for _, member := range f.members {
		if member.CompanyID == companyID && member.CompanyMemberID == companyMemberID {
			copied := member
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func newAnalytics() (*fakeResultsStore, *AnalyticsService) {
	results := &fakeResultsStore{rows: []model.QuizResult{
		{UserID: 11, CompanyID: 4, QuizRecordID: 7, AverageResult: 1.0, PassDate: "2024-01-10 09:00:00"},
		{UserID: 11, CompanyID: 4, QuizRecordID: 7, AverageResult: 1.5, PassDate: "2024-02-01 12:30:00"},
		{UserID: 11, CompanyID: 4, QuizRecordID: 8, AverageResult: 2.0, PassDate: "2024-01-20 15:00:00"},
		{UserID: 12, CompanyID: 4, QuizRecordID: 7, AverageResult: 0.5, PassDate: "2024-01-15 10:00:00"},
		{UserID: 99, CompanyID: 4, QuizRecordID: 7, AverageResult: 1.0, PassDate: "2024-01-01 08:00:00"},
	}}
	quizzes := &fakeQuizLookup{quizzes: []model.Quiz{
		{QuizRecordID: 7, CompanyID: 4, QuizIDInCompany: 1},
		{QuizRecordID: 8, CompanyID: 4, QuizIDInCompany: 2},
	}}
	members := &fakeMemberLookup{members: []model.MemberRecord{
		{CompanyID: 4, CompanyMemberID: 1, UserID: 11, Role: model.RoleOwner},
		{CompanyID: 4, CompanyMemberID: 2, UserID: 12, Role: model.RoleMember},
		// User 99 has left; their rows no longer map to a member.
	}}
	return results, NewAnalyticsService(results, quizzes, members)
}

func TestMyRatingDynamics(t *testing.T) {
	_, svc := newAnalytics()

	points, err := svc.MyRatingDynamics(11)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, uint(1), points[0].QuizIDInCompany)
	assert.Equal(t, uint(2), points[2].QuizIDInCompany)
	assert.Equal(t, 1.5, points[1].AverageResult)
	assert.Equal(t, "2024-02-01 12:30:00", points[1].PassDate)
}

func TestQuizzesPassedKeepsLatestDate(t *testing.T) {
	_, svc := newAnalytics()

	passages, err := svc.QuizzesPassed(11)
	require.NoError(t, err)
	require.Len(t, passages, 2)
	assert.Equal(t, uint(1), passages[0].QuizIDInCompany)
	assert.Equal(t, "2024-02-01 12:30:00", passages[0].LastPassDate)
	assert.Equal(t, uint(2), passages[1].QuizIDInCompany)
	assert.Equal(t, "2024-01-20 15:00:00", passages[1].LastPassDate)
}

func TestMembersRatingDynamicsMapsMemberIDs(t *testing.T) {
	_, svc := newAnalytics()

	points, err := svc.MembersRatingDynamics(4)
	require.NoError(t, err)
	// User 99's rows drop out: no member record anymore.
	require.Len(t, points, 4)
	for _, point := range points {
		assert.Contains(t, []uint{1, 2}, point.CompanyMemberID)
	}
}

func TestMemberRatingDynamics(t *testing.T) {
	_, svc := newAnalytics()

	points, err := svc.MemberRatingDynamics(4, 2)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, uint(2), points[0].CompanyMemberID)
	assert.Equal(t, 0.5, points[0].AverageResult)

	_, err = svc.MemberRatingDynamics(4, 42)
	assert.ErrorIs(t, err, util.ErrMemberNotFound)
}

func TestMembersPassed(t *testing.T) {
	_, svc := newAnalytics()

	passages, err := svc.MembersPassed(4)
	require.NoError(t, err)
	// (member 1, quiz 1), (member 1, quiz 2), (member 2, quiz 1).
	require.Len(t, passages, 3)
	assert.Equal(t, uint(1), passages[0].CompanyMemberID)
	assert.Equal(t, uint(1), passages[0].QuizIDInCompany)
	assert.Equal(t, "2024-02-01 12:30:00", passages[0].LastPassDate)
}

func TestOverallRating(t *testing.T) {
	_, svc := newAnalytics()

	rating, err := svc.OverallRating(12)
	require.NoError(t, err)
	assert.Equal(t, 0.5, rating)

	_, err = svc.OverallRating(1234)
	assert.ErrorIs(t, err, util.ErrNoResults)
}
