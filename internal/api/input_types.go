package api

type registerInput struct {
	Username  string `json:"username" form:"username"`
	Email     string `json:"emailAddress" form:"emailAddress"`
	Password1 string `json:"password1" form:"password1"`
	Password2 string `json:"password2" form:"password2"`
}

type loginInput struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type surveyInput struct {
	Sex      string `json:"sex" form:"sex"`
	Age      string `json:"age" form:"age"`
	Height   string `json:"height" form:"height"`
	Weight   string `json:"weight" form:"weight"`
	Activity string `json:"activity" form:"activity"`
	Meals    string `json:"meals" form:"meals"`
	Snacks   string `json:"snacks" form:"snacks"`
}
