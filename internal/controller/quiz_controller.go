package controller

import (
	"github.com/DmytroRudikov/Meduzzen-internship/internal/service"
	"github.com/DmytroRudikov/Meduzzen-internship/internal/util"
	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

func (c *QuizController) Create(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	companyID, ok := uintParam(ctx, "company_id")
	if !ok {
		return
	}

	var req service.CreateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.Create(actorID, companyID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, quiz)
}

func (c *QuizController) List(ctx *gin.Context) {
	actorID, ok := actor(ctx)
	if !ok {
		return
	}
	companyID, ok := uintParam(ctx, "company_id")
	if !ok {
		return
	}

	quizzes, err := c.QuizService.List(actorID, companyID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

func (c *QuizController) Get(ctx *gin.Context) {
	actorID, companyID, quizID, ok := c.coords(ctx)
	if !ok {
		return
	}

	quiz, err := c.QuizService.Get(actorID, companyID, quizID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

func (c *QuizController) Update(ctx *gin.Context) {
	actorID, companyID, quizID, ok := c.coords(ctx)
	if !ok {
		return
	}

	var req service.UpdateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.QuizService.Update(actorID, companyID, quizID, req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

func (c *QuizController) UpdateQuestion(ctx *gin.Context) {
	actorID, companyID, quizID, ok := c.coords(ctx)
	if !ok {
		return
	}

	var req service.UpdateQuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.QuizService.UpdateQuestion(actorID, companyID, quizID, req); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"question_id_in_quiz": req.QuestionIDInQuiz})
}

func (c *QuizController) AddQuestions(ctx *gin.Context) {
	actorID, companyID, quizID, ok := c.coords(ctx)
	if !ok {
		return
	}

	var req struct {
		Questions []service.QuestionInput `json:"questions" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.QuizService.AddQuestions(actorID, companyID, quizID, req.Questions); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, gin.H{"added": len(req.Questions)})
}

func (c *QuizController) DeleteQuestions(ctx *gin.Context) {
	actorID, companyID, quizID, ok := c.coords(ctx)
	if !ok {
		return
	}

	var req struct {
		QuestionIDsInQuiz []int `json:"question_ids_in_quiz" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.QuizService.DeleteQuestions(actorID, companyID, quizID, req.QuestionIDsInQuiz); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": len(req.QuestionIDsInQuiz)})
}

func (c *QuizController) Delete(ctx *gin.Context) {
	actorID, companyID, quizID, ok := c.coords(ctx)
	if !ok {
		return
	}

	if err := c.QuizService.Delete(actorID, companyID, quizID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"deleted": quizID})
}

func (c *QuizController) coords(ctx *gin.Context) (actorID, companyID, quizID uint, ok bool) {
	actorID, ok = actor(ctx)
	if !ok {
		return
	}
	companyID, ok = uintParam(ctx, "company_id")
	if !ok {
		return
	}
	quizID, ok = uintParam(ctx, "quiz_id")
	return
}
