package seed

import (
	"github.com/mjuwandi/portfolio-backend/internal/blog"
	"github.com/mjuwandi/portfolio-backend/internal/projects"
	"github.com/mjuwandi/portfolio-backend/internal/publications"
)

func sampleProjects() []projects.Project {
	return []projects.Project{
		{
			Title:     "Customer Churn Prediction",
			Slug:      "customer-churn-prediction",
			Summary:   "Predict churn with explainable ML to prioritize retention actions.",
			Domain:    "ML",
			Stack:     []string{"Python", "scikit-learn", "XGBoost", "SHAP"},
			Year:      2023,
			Problem:   "Identify customers likely to churn in the next 60 days.",
			Approach:  "Feature engineering + gradient boosting with class-weighting and calibration.",
			Dataset:   "Telco churn dataset + proprietary CRM features.",
			Model:     "XGBoost with Bayesian optimization; SHAP for interpretability.",
			Results:   "AUC 0.89, recall 76% at 15% alert rate.",
			Impact:    "Reduced churn by 5.2% in pilot, saving ~$1.1M ARR.",
			GithubURL: "https://github.com/",
			Tags:      []string{"classification", "retention", "explainability"},
			PlotlyFig: map[string]any{
				"data": []any{
					map[string]any{
						"type": "bar",
						"x":    []any{"Contract", "Tenure", "MonthlyCharges"},
						"y":    []any{0.34, 0.27, 0.18},
					},
				},
				"layout": map[string]any{"title": "Top Features (SHAP)"},
			},
		},
		{
			Title:     "Demand Forecasting with Hierarchical Time Series",
			Slug:      "demand-forecasting-hts",
			Summary:   "Weekly forecasts across 120 SKUs with reconciliation and uncertainty.",
			Domain:    "Time Series",
			Stack:     []string{"Python", "Prophet", "statsmodels", "scikit-learn"},
			Year:      2022,
			Problem:   "Improve inventory planning across regions and SKUs.",
			Approach:  "Feature-rich SARIMAX + gradient boosting for residuals; hierarchical reconciliation.",
			Dataset:   "Sales transactions 3 years + promo calendar.",
			Model:     "SARIMAX + LightGBM residual model.",
			Results:   "MAPE 8.6% overall; stockouts down 23%.",
			Impact:    "Saved $420k in holding and lost sales.",
			GithubURL: "https://github.com/",
			Tags:      []string{"forecasting", "inventory", "hts"},
		},
		{
			Title:     "Interactive Mobility Dashboard",
			Slug:      "mobility-dashboard",
			Summary:   "City mobility patterns explored via interactive geovisualizations.",
			Domain:    "Visualization",
			Stack:     []string{"Python", "Altair", "Deck.gl"},
			Year:      2024,
			Problem:   "Understand peak congestion corridors.",
			Approach:  "Aggregated GPS pings and derived OD matrices; built interactive views.",
			Dataset:   "1.2B GPS pings over 6 months.",
			Model:     "Clustering + KDE for hotspots.",
			Results:   "Revealed 3 critical choke points.",
			Impact:    "Informed signal timing policy saving ~8% commute time.",
			GithubURL: "https://github.com/",
			Tags:      []string{"geospatial", "altair", "dashboard"},
		},
	}
}

func samplePublications() []publications.Publication {
	return []publications.Publication{
		{
			Title:     "Storytelling with Data: From Insight to Impact",
			Venue:     "Global Data Summit",
			Year:      2024,
			Authors:   []string{"Muhamad Juwandi"},
			SlidesURL: "https://slides.com/",
			Kind:      "talk",
		},
		{
			Title:     "Robust ML Pipelines with MLOps",
			Venue:     "PyData",
			Year:      2023,
			Authors:   []string{"Muhamad Juwandi"},
			SlidesURL: "https://slides.com/",
			Kind:      "workshop",
		},
	}
}

func samplePosts() []blog.Post {
	return []blog.Post{
		{
			Title:       "Designing Ethical AI Systems",
			Slug:        "ethical-ai",
			Excerpt:     "Principles and practical checklists for responsible ML.",
			Body:        "Long-form body in Markdown or MDX.",
			Topics:      []string{"ethics", "ai"},
			PublishedAt: "2024-05-11",
		},
		{
			Title:       "Visualization Patterns that Clarify",
			Slug:        "viz-patterns",
			Excerpt:     "Choosing encodings that match mental models.",
			Body:        "Post content...",
			Topics:      []string{"viz", "design"},
			PublishedAt: "2024-03-03",
		},
		{
			Title:       "From Notebook to Production",
			Slug:        "notebook-to-prod",
			Excerpt:     "A compact guide to MLOps for data scientists.",
			Body:        "Post content...",
			Topics:      []string{"mlops", "devops"},
			PublishedAt: "2023-11-18",
		},
		{
			Title:       "R + Python for Analytics",
			Slug:        "r-plus-python",
			Excerpt:     "Leverage strengths of both ecosystems.",
			Body:        "Post content...",
			Topics:      []string{"r", "python"},
			PublishedAt: "2023-07-07",
		},
	}
}
