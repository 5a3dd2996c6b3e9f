package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/types"
	"github.com/willythepapi/FITART-v1/internal/usecase"
)

// MealHandler serves meal logging and the food table.
type MealHandler struct {
	uc *usecase.UseCases
}

func NewMealHandler(uc *usecase.UseCases) *MealHandler {
	return &MealHandler{uc: uc}
}

func (h *MealHandler) RegisterRoutes(router *gin.RouterGroup) {
	meals := router.Group("/meals")
	{
		meals.GET("", h.ListMeals)
		meals.POST("", h.AddMeal)
		meals.GET("/:id", h.GetMeal)
		meals.PUT("/:id", h.UpdateMeal)
		meals.DELETE("/:id", h.DeleteMeal)
	}
	router.GET("/foods", h.SearchFoods)
}

// ListMeals returns the meals of ?date=, today by default.
func (h *MealHandler) ListMeals(c *gin.Context) {
	date := c.DefaultQuery("date", h.uc.Today())
	meals, err := h.uc.GetMealsByDate.Execute(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *MealHandler) GetMeal(c *gin.Context) {
	meal, err := h.uc.GetMealByID.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *MealHandler) AddMeal(c *gin.Context) {
	var req types.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	var (
		meal models.Meal
		err  error
	)
	if req.FromFood() {
		meal, err = h.uc.AddMealEntry.ExecuteFood(c.Request.Context(), req.Date, req.FoodID, req.Grams)
	} else {
		meal, err = h.uc.AddMealEntry.Execute(c.Request.Context(), req.Date, req.MealInput())
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (h *MealHandler) UpdateMeal(c *gin.Context) {
	var req types.MealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	var (
		meal models.Meal
		err  error
	)
	id := c.Param("id")
	if req.FromFood() {
		meal, err = h.uc.UpdateMealEntry.ExecuteFood(c.Request.Context(), req.Date, id, req.FoodID, req.Grams)
	} else {
		meal, err = h.uc.UpdateMealEntry.Execute(c.Request.Context(), req.Date, id, req.MealInput())
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

// DeleteMeal needs ?date= to correct that day's totals.
func (h *MealHandler) DeleteMeal(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		badRequest(c, "date query parameter is required")
		return
	}

	if err := h.uc.DeleteMealEntry.Execute(c.Request.Context(), date, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SearchFoods matches ?q= against the food table.
func (h *MealHandler) SearchFoods(c *gin.Context) {
	c.JSON(http.StatusOK, h.uc.SearchFoods.Execute(c.Query("q")))
}
