package controllers

import (
	"strconv"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"
	"github.com/Dung-L3/SEP490-G20-sub000/pkg/resp"
	"github.com/Dung-L3/SEP490-G20-sub000/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Service *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{Service: svc}
}

// ----- Categories -----

func (cc *CatalogController) CreateCategory(c *gin.Context) {
	var cat entity.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Service.CreateCategory(&cat); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cat)
}

func (cc *CatalogController) ListCategories(c *gin.Context) {
	cats, err := cc.Service.ListCategories()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cats)
}

func (cc *CatalogController) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := cc.Service.DeleteCategory(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// ----- Dishes -----

func (cc *CatalogController) CreateDish(c *gin.Context) {
	var d entity.Dish
	if err := c.ShouldBindJSON(&d); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Service.CreateDish(&d); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, d)
}

func (cc *CatalogController) GetDish(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	d, err := cc.Service.GetDish(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, d)
}

func (cc *CatalogController) UpdateDish(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Service.UpdateDish(id, updates); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": id})
}

func (cc *CatalogController) DeleteDish(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := cc.Service.DeleteDish(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// GET /menu/dishes?categoryId=&all=1
func (cc *CatalogController) ListDishes(c *gin.Context) {
	var categoryID uint
	if raw := c.Query("categoryId"); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			resp.BadRequest(c, "invalid categoryId")
			return
		}
		categoryID = uint(v)
	}
	activeOnly := c.Query("all") == ""
	dishes, err := cc.Service.ListDishes(categoryID, activeOnly)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, dishes)
}

// ----- Combos -----

func (cc *CatalogController) CreateCombo(c *gin.Context) {
	var combo entity.Combo
	if err := c.ShouldBindJSON(&combo); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Service.CreateCombo(&combo); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, combo)
}

func (cc *CatalogController) GetCombo(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	combo, err := cc.Service.GetCombo(id)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, combo)
}

func (cc *CatalogController) UpdateCombo(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.Service.UpdateCombo(id, updates); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": id})
}

func (cc *CatalogController) DeleteCombo(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := cc.Service.DeleteCombo(id); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

func (cc *CatalogController) ListCombos(c *gin.Context) {
	combos, err := cc.Service.ListCombos(c.Query("all") == "")
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, combos)
}
