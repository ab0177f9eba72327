package service

import (
	"testing"

	"github.com/DmytroRudikov/Meduzzen-internship/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationSink struct {
	created []model.Notification
}

func (f *fakeNotificationSink) CreateBatch(notifications []model.Notification) error {
	f.created = append(f.created, notifications...)
	return nil
}

func TestNotifyMembersOnQuizCreation(t *testing.T) {
	roster := &fakeMemberLookup{members: []model.MemberRecord{
		{CompanyID: 4, CompanyMemberID: 1, UserID: 11, Role: model.RoleOwner},
		{CompanyID: 4, CompanyMemberID: 2, UserID: 12, Role: model.RoleMember},
	}}
	sink := &fakeNotificationSink{}
	svc := &QuizService{Roster: roster, Notifications: sink}

	quiz := &model.Quiz{QuizRecordID: 7, CompanyID: 4, QuizIDInCompany: 1, QuizName: "Onboarding"}
	require.NoError(t, svc.notifyMembers(quiz))

	// Every member gets one unread notification carrying the historical
	// invitation wording.
	require.Len(t, sink.created, 2)
	for _, notification := range sink.created {
		assert.Equal(t, "Please take the quiz at any time convenient for you", notification.Text)
		assert.Equal(t, model.NotificationUnread, notification.Status)
		assert.Equal(t, uint(4), notification.CompanyID)
		assert.Equal(t, uint(7), notification.QuizRecordID)
		assert.NotEmpty(t, notification.DateTime)
	}
	assert.Equal(t, uint(11), sink.created[0].UserID)
	assert.Equal(t, uint(12), sink.created[1].UserID)
}
