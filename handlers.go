package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Clancy-dev/clancygraintracker/models"
	"github.com/Clancy-dev/clancygraintracker/pkg/userstore"
)

func setupRoutes(r *gin.Engine) {
	r.POST("/register", registerHandler)
	r.POST("/login", loginHandler)
	r.POST("/refresh", refreshHandler)
	r.POST("/revoke_refresh", revokeRefreshHandler)

	authGroup := r.Group("")
	authGroup.Use(jwtAuthMiddleware())
	authGroup.GET("/me", meHandler)
	authGroup.PUT("/me", updateMeHandler)
	authGroup.GET("/data", getDataHandler)
	authGroup.PUT("/data", updateDataHandler)
	authGroup.POST("/expenses", createExpenseHandler)
	authGroup.GET("/expenses", listExpensesHandler)
	authGroup.DELETE("/expenses/:id", deleteItemHandler(models.ItemTypeExpense))
	authGroup.POST("/sales", createSaleHandler)
	authGroup.GET("/sales", listSalesHandler)
	authGroup.DELETE("/sales/:id", deleteItemHandler(models.ItemTypeSale))
	authGroup.POST("/inventory", createInventoryHandler)
	authGroup.GET("/inventory", listInventoryHandler)
	authGroup.DELETE("/inventory/:id", deleteItemHandler(models.ItemTypeInventory))
	authGroup.POST("/debts", createDebtHandler)
	authGroup.GET("/debts", listDebtsHandler)
	authGroup.DELETE("/debts/:id", deleteItemHandler(models.ItemTypeDebt))
	authGroup.POST("/market-prices", createMarketPriceHandler)
	authGroup.GET("/market-prices", listMarketPricesHandler)
	authGroup.DELETE("/market-prices/:id", deleteItemHandler(models.ItemTypeMarketPrice))
	authGroup.GET("/history", historyForDateHandler)
	authGroup.POST("/history", addHistoryHandler)
	authGroup.GET("/reports/summary", reportsSummaryHandler)

	adminGroup := authGroup.Group("")
	adminGroup.Use(adminOnlyMiddleware())
	adminGroup.GET("/recycle-bin", listRecycleBinHandler)
	adminGroup.POST("/recycle-bin/:id/restore", restoreItemHandler)
	adminGroup.DELETE("/recycle-bin/:id", purgeItemHandler)
	adminGroup.GET("/users", listUsersHandler)
}

func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			c.Abort()
			return
		}
		tokenString := authHeader[7:]
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			c.Abort()
			return
		}
		userID, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)
		c.Set("userID", userID)
		c.Set("email", email)
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	}
}

func adminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		if role != string(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentUserID returns the acting user's id set by jwtAuthMiddleware.
func currentUserID(c *gin.Context) string {
	v, _ := c.Get("userID")
	id, _ := v.(string)
	if id == "" {
		return "unknown"
	}
	return id
}

// parseDate accepts an RFC3339 timestamp or a plain YYYY-MM-DD day. An empty
// string yields the current time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func registerHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := Register(req.Name, req.Email, req.Password, models.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, userstore.ErrEmailTaken), errors.Is(err, userstore.ErrAdminExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, userstore.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	// signup logs the new user straight in
	token, err := generateAccessToken(user, accessTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	refreshToken, err := users.CreateRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user registered successfully", "user": user, "token": token, "refresh_token": refreshToken})
}

func loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	token, err := generateAccessToken(user, accessTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	refreshToken, err := users.CreateRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "login successful", "user": user, "token": token, "refresh_token": refreshToken})
}

// refreshHandler exchanges a refresh token for a new access token and rotates the refresh token
func refreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rt, ok, err := users.ValidateRefreshToken(req.RefreshToken)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}
	user, found, err := users.FindByID(rt.UserID)
	if err != nil || !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	token, err := generateAccessToken(user, refreshAccessTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	// rotate refresh token: revoke existing and create new one
	if _, err := users.RevokeRefreshToken(req.RefreshToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rotate refresh token"})
		return
	}
	newRT, err := users.CreateRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rotate refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "refresh_token": newRT})
}

// revokeRefreshHandler revokes a given refresh token (useful on logout)
func revokeRefreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ok, err := users.RevokeRefreshToken(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "refresh token not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "refresh token revoked"})
}

func meHandler(c *gin.Context) {
	user, found, err := users.FindByID(currentUserID(c))
	if err != nil || !found {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func updateMeHandler(c *gin.Context) {
	var req struct {
		Name         string `json:"name"`
		ProfileImage string `json:"profileImage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, found, err := users.UpdateProfile(currentUserID(c), req.Name, req.ProfileImage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func getDataHandler(c *gin.Context) {
	c.JSON(http.StatusOK, appStore.Data())
}

// updateDataHandler replaces the whole document. Callers submit the full next
// state; nothing is merged.
func updateDataHandler(c *gin.Context) {
	var doc models.AppData
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := appStore.UpdateData(doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "data updated"})
}

func createExpenseHandler(c *gin.Context) {
	var req struct {
		Description string `json:"description" binding:"required"`
		Amount      int64  `json:"amount" binding:"required"`
		Category    string `json:"category"`
		Date        string `json:"date"` // optional ISO8601
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than zero"})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	expense := models.Expense{
		ID:          uuid.NewString(),
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Date:        date,
	}
	d := appStore.Data()
	d.Expenses = append(d.Expenses, expense)
	if err := appStore.UpdateData(d); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	recordHistory(models.ItemTypeExpense, expense.Description, expense.Amount, expense.Date,
		map[string]any{"category": expense.Category})
	c.JSON(http.StatusOK, expense)
}

func listExpensesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, appStore.Data().Expenses)
}

func createSaleHandler(c *gin.Context) {
	var req struct {
		Customer string `json:"customer" binding:"required"`
		Amount   int64  `json:"amount" binding:"required"`
		Quantity int    `json:"quantity" binding:"required"`
		IsPaid   bool   `json:"isPaid"`
		Date     string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount <= 0 || req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount and quantity must be greater than zero"})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	sale := models.Sale{
		ID:       uuid.NewString(),
		Customer: req.Customer,
		Amount:   req.Amount,
		Quantity: req.Quantity,
		IsPaid:   req.IsPaid,
		Date:     date,
	}
	d := appStore.Data()
	d.Sales = append(d.Sales, sale)
	if err := appStore.UpdateData(d); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	recordHistory(models.ItemTypeSale, "Sale to "+sale.Customer, sale.Amount, sale.Date,
		map[string]any{"customer": sale.Customer, "quantity": sale.Quantity, "isPaid": sale.IsPaid})
	c.JSON(http.StatusOK, sale)
}

func listSalesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, appStore.Data().Sales)
}

func createInventoryHandler(c *gin.Context) {
	var req struct {
		Source     string `json:"source" binding:"required"`
		Quantity   int    `json:"quantity" binding:"required"`
		PricePerKg int64  `json:"pricePerKg" binding:"required"`
		Date       string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity <= 0 || req.PricePerKg <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity and price must be greater than zero"})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	item := models.InventoryItem{
		ID:         uuid.NewString(),
		Source:     req.Source,
		Quantity:   req.Quantity,
		PricePerKg: req.PricePerKg,
		TotalCost:  int64(req.Quantity) * req.PricePerKg,
		Date:       date,
	}
	d := appStore.Data()
	d.Inventory = append(d.Inventory, item)
	if err := appStore.UpdateData(d); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	recordHistory(models.ItemTypeInventory, "Purchase from "+item.Source, item.TotalCost, item.Date,
		map[string]any{"source": item.Source, "quantity": item.Quantity, "pricePerKg": item.PricePerKg})
	c.JSON(http.StatusOK, item)
}

func listInventoryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, appStore.Data().Inventory)
}

func createDebtHandler(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Amount      int64  `json:"amount" binding:"required"`
		Description string `json:"description"`
		Kind        string `json:"kind"`
		Date        string `json:"date"`
		DueDate     string `json:"dueDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be greater than zero"})
		return
	}
	kind := models.DebtKind(req.Kind)
	if kind == "" {
		kind = models.DebtKindDebtor
	}
	if kind != models.DebtKindDebtor && kind != models.DebtKindCreditor {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be debtor or creditor"})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due date"})
		return
	}
	debt := models.Debt{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        date,
		DueDate:     dueDate,
		Kind:        kind,
	}
	d := appStore.Data()
	if kind == models.DebtKindDebtor {
		d.Debtors = append(d.Debtors, debt)
	} else {
		d.Creditors = append(d.Creditors, debt)
	}
	if err := appStore.UpdateData(d); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	recordHistory(models.ItemTypeDebt, "Added "+string(kind)+": "+debt.Name, debt.Amount, debt.Date,
		map[string]any{"type": string(kind), "description": debt.Description})
	c.JSON(http.StatusOK, debt)
}

func listDebtsHandler(c *gin.Context) {
	d := appStore.Data()
	c.JSON(http.StatusOK, gin.H{"debtors": d.Debtors, "creditors": d.Creditors})
}

func createMarketPriceHandler(c *gin.Context) {
	var req struct {
		Market string `json:"market" binding:"required"`
		Price  int64  `json:"price" binding:"required"`
		Date   string `json:"date"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be greater than zero"})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	price := models.MarketPrice{
		ID:     uuid.NewString(),
		Market: req.Market,
		Price:  req.Price,
		Date:   date,
		Notes:  req.Notes,
	}
	d := appStore.Data()
	d.MarketPrices = append(d.MarketPrices, price)
	if err := appStore.UpdateData(d); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	recordHistory(models.ItemTypeMarketPrice, "Recorded price at "+price.Market, price.Price, price.Date,
		map[string]any{"market": price.Market, "notes": price.Notes})
	c.JSON(http.StatusOK, price)
}

func listMarketPricesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, appStore.Data().MarketPrices)
}

// recordHistory appends an audit entry as a best-effort companion to the
// primary mutation; a failure here never fails the request.
func recordHistory(t models.ItemType, description string, amount int64, date time.Time, details map[string]any) {
	_, _ = appStore.AddHistoryEntry(models.HistoryEntry{
		Type:        t,
		Description: description,
		Amount:      amount,
		Date:        date,
		Details:     details,
	})
}

// deleteItemHandler soft-deletes an item of the given type into the recycle
// bin. A missing id is not an error; the response just reports deleted=false.
func deleteItemHandler(itemType models.ItemType) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		found, err := appStore.DeleteItem(itemType, id, currentUserID(c))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
			return
		}
		if found {
			recordHistory(itemType, "Removed "+string(itemType), 0, time.Now(),
				map[string]any{"action": "deleted", "id": id})
		}
		c.JSON(http.StatusOK, gin.H{"deleted": found})
	}
}

func historyForDateHandler(c *gin.Context) {
	q := c.Query("date")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter required"})
		return
	}
	date, err := parseDate(q)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	c.JSON(http.StatusOK, appStore.HistoryForDate(date))
}

func addHistoryHandler(c *gin.Context) {
	var req struct {
		Type        models.ItemType `json:"type" binding:"required"`
		Description string          `json:"description" binding:"required"`
		Amount      int64           `json:"amount"`
		Date        string          `json:"date"`
		Details     map[string]any  `json:"details"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidItemType(req.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown history entry type"})
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}
	entry, err := appStore.AddHistoryEntry(models.HistoryEntry{
		Type:        req.Type,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		Details:     req.Details,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// reportsSummaryHandler returns the totals the dashboard renders.
func reportsSummaryHandler(c *gin.Context) {
	d := appStore.Data()
	var totalExpenses, totalSales, paidSales, unpaidSales, inventoryCost, totalDebtors, totalCreditors int64
	var stockKg, soldKg int
	for _, e := range d.Expenses {
		totalExpenses += e.Amount
	}
	for _, s := range d.Sales {
		totalSales += s.Amount
		soldKg += s.Quantity
		if s.IsPaid {
			paidSales += s.Amount
		} else {
			unpaidSales += s.Amount
		}
	}
	for _, i := range d.Inventory {
		inventoryCost += i.TotalCost
		stockKg += i.Quantity
	}
	for _, dt := range d.Debtors {
		totalDebtors += dt.Amount
	}
	for _, cr := range d.Creditors {
		totalCreditors += cr.Amount
	}
	c.JSON(http.StatusOK, gin.H{
		"totalExpenses":  totalExpenses,
		"totalSales":     totalSales,
		"paidSales":      paidSales,
		"unpaidSales":    unpaidSales,
		"inventoryCost":  inventoryCost,
		"purchasedKg":    stockKg,
		"soldKg":         soldKg,
		"remainingKg":    stockKg - soldKg,
		"totalDebtors":   totalDebtors,
		"totalCreditors": totalCreditors,
		"netPosition":    totalSales - totalExpenses,
	})
}

// listRecycleBinHandler returns the ledger, optionally filtered by item type.
func listRecycleBinHandler(c *gin.Context) {
	var (
		items []models.DeletedItem
		err   error
	)
	if t := c.Query("type"); t != "" {
		itemType := models.ItemType(t)
		if !models.ValidItemType(itemType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown item type"})
			return
		}
		items, err = bin.ListByType(itemType)
	} else {
		items, err = bin.List()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// restoreItemHandler stamps the ledger entry and re-inserts the payload into
// its live collection. The entry itself stays in the bin.
func restoreItemHandler(c *gin.Context) {
	id := c.Param("id")
	items, err := bin.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	var itemType models.ItemType
	found := false
	for _, item := range items {
		if item.ID == id {
			itemType = item.ItemType
			found = true
			break
		}
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	payload, ok, err := bin.Restore(id, currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "restore failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	if err := appStore.RestoreItem(itemType, payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "restore failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item restored", "itemType": itemType})
}

func purgeItemHandler(c *gin.Context) {
	ok, err := bin.PermanentlyDelete(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item permanently deleted"})
}

func listUsersHandler(c *gin.Context) {
	list, err := users.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}
