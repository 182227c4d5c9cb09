package catalog

// Artifact bodies for the built-in templates. Every slot carries one or more
// {APP_NAME} placeholder occurrences; the assembler replaces all of them.
// Frontend bodies follow the "===== path =====" section convention the
// deployment bundler understands.

const youtubeFrontend = `===== src/App.jsx =====
function App() {
  const [url, setUrl] = useState('');
  const [summary, setSummary] = useState(null);

  const summarize = async () => {
    const res = await fetch('/api/summarize', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ url })
    });
    setSummary(await res.json());
  };

  return (
    <div className="app">
      <div className="main-content">
        <h1>{APP_NAME}</h1>
        <p>Paste a YouTube link and get a summary of the video.</p>
        <input type="text" value={url} onChange={e => setUrl(e.target.value)}
               placeholder="https://www.youtube.com/watch?v=..." />
        <button onClick={summarize}>Summarize</button>
        {summary && <div className="card"><p>{summary.text}</p></div>}
      </div>
    </div>
  );
}

===== src/index.css =====
.card { background: #1e293b; border-radius: 8px; padding: 16px; margin-top: 24px; }
h1 { margin-bottom: 8px; }
`

const youtubeBackend = `# {APP_NAME} backend (FastAPI)
from fastapi import FastAPI
from pydantic import BaseModel
from youtube_transcript_api import YouTubeTranscriptApi

app = FastAPI(title="{APP_NAME}")

class SummarizeRequest(BaseModel):
    url: str

@app.post("/api/summarize")
def summarize(req: SummarizeRequest):
    video_id = req.url.split("v=")[-1].split("&")[0]
    transcript = YouTubeTranscriptApi.get_transcript(video_id)
    text = " ".join(chunk["text"] for chunk in transcript)
    # naive extractive summary: first 5 sentences
    sentences = text.split(". ")[:5]
    return {"videoId": video_id, "text": ". ".join(sentences)}
`

const youtubeDatabase = `-- {APP_NAME} schema (Supabase / PostgreSQL)
create table summaries (
    id uuid primary key default gen_random_uuid(),
    video_id text not null,
    video_url text not null,
    summary text not null,
    created_at timestamptz not null default now()
);

create index summaries_video_id_idx on summaries (video_id);
`

const youtubeDeploy = `# Deploying {APP_NAME}

1. Frontend: push to GitHub, import the repo in Netlify, build command "npm run build", publish directory "dist".
2. Backend: create a new Render web service from the same repo, start command "uvicorn main:app --host 0.0.0.0 --port $PORT".
3. Database: create a Supabase project, run the {APP_NAME} schema in the SQL editor.
4. Set VITE_API_URL on Netlify to the Render service URL.
`

const invoiceFrontend = `===== src/App.jsx =====
function App() {
  const [invoices, setInvoices] = useState([]);
  const [client, setClient] = useState('');
  const [amount, setAmount] = useState('');

  const addInvoice = () => {
    setInvoices([...invoices, { client, amount: parseFloat(amount), paid: false }]);
    setClient('');
    setAmount('');
  };

  return (
    <div className="app">
      <div className="sidebar">
        <div className="sidebar-header"><h2>{APP_NAME}</h2></div>
        <p>{invoices.length} invoices</p>
      </div>
      <div className="main-content">
        <h1>Invoices</h1>
        <input type="text" value={client} onChange={e => setClient(e.target.value)} placeholder="Client name" />
        <input type="text" value={amount} onChange={e => setAmount(e.target.value)} placeholder="Amount" />
        <button onClick={addInvoice}>Create invoice</button>
        <ul>
          {invoices.map((inv, i) => (
            <li key={i}>{inv.client} — {inv.amount.toFixed(2)} {inv.paid ? '(paid)' : '(open)'}</li>
          ))}
        </ul>
      </div>
    </div>
  );
}

===== src/index.css =====
ul { list-style: none; margin-top: 24px; }
li { padding: 12px 0; border-bottom: 1px solid #334155; }
`

const invoiceBackend = `# {APP_NAME} backend (FastAPI)
from fastapi import FastAPI
from pydantic import BaseModel

app = FastAPI(title="{APP_NAME}")
invoices = []

class Invoice(BaseModel):
    client: str
    amount: float
    paid: bool = False

@app.get("/api/invoices")
def list_invoices():
    return invoices

@app.post("/api/invoices")
def create_invoice(invoice: Invoice):
    invoices.append(invoice)
    return invoice
`

const invoiceDatabase = `-- {APP_NAME} schema (Supabase / PostgreSQL)
create table invoices (
    id uuid primary key default gen_random_uuid(),
    client text not null,
    amount numeric(12,2) not null,
    paid boolean not null default false,
    issued_at timestamptz not null default now()
);
`

const invoiceDeploy = `# Deploying {APP_NAME}

1. Frontend on Netlify: connect the repo, build command "npm run build", publish "dist".
2. Backend on Render: start command "uvicorn main:app --host 0.0.0.0 --port $PORT".
3. Supabase: run the {APP_NAME} schema, then copy the project URL and anon key into the backend env.
`

const scraperFrontend = `===== src/App.jsx =====
function App() {
  const [target, setTarget] = useState('');
  const [rows, setRows] = useState([]);

  const scrape = async () => {
    const res = await fetch('/api/scrape', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ url: target })
    });
    setRows(await res.json());
  };

  return (
    <div className="app">
      <div className="main-content">
        <h1>{APP_NAME}</h1>
        <input type="text" value={target} onChange={e => setTarget(e.target.value)} placeholder="https://example.com" />
        <button onClick={scrape}>Extract</button>
        <table>
          <tbody>
            {rows.map((r, i) => <tr key={i}><td>{r.title}</td><td>{r.link}</td></tr>)}
          </tbody>
        </table>
      </div>
    </div>
  );
}

===== src/index.css =====
table { width: 100%; margin-top: 24px; border-collapse: collapse; }
td { padding: 8px; border-bottom: 1px solid #334155; }
`

const scraperBackend = `# {APP_NAME} backend (FastAPI)
from fastapi import FastAPI
from pydantic import BaseModel
import httpx
from bs4 import BeautifulSoup

app = FastAPI(title="{APP_NAME}")

class ScrapeRequest(BaseModel):
    url: str

@app.post("/api/scrape")
async def scrape(req: ScrapeRequest):
    async with httpx.AsyncClient() as client:
        resp = await client.get(req.url, follow_redirects=True)
    soup = BeautifulSoup(resp.text, "html.parser")
    return [
        {"title": a.get_text(strip=True), "link": a.get("href")}
        for a in soup.find_all("a", href=True)
    ]
`

const scraperDatabase = `-- {APP_NAME} schema (Supabase / PostgreSQL)
create table scrape_runs (
    id uuid primary key default gen_random_uuid(),
    target_url text not null,
    item_count int not null default 0,
    ran_at timestamptz not null default now()
);

create table scraped_items (
    id bigserial primary key,
    run_id uuid not null references scrape_runs(id) on delete cascade,
    title text,
    link text
);
`

const scraperDeploy = `# Deploying {APP_NAME}

1. Netlify hosts the frontend: build "npm run build", publish "dist".
2. Render hosts the backend: "uvicorn main:app --host 0.0.0.0 --port $PORT".
3. Supabase: apply the {APP_NAME} schema before the first run.
4. Respect robots.txt of the sites you scrape.
`

const todoFrontend = `===== src/App.jsx =====
function App() {
  const [tasks, setTasks] = useState([]);
  const [text, setText] = useState('');

  const addTask = () => {
    if (!text.trim()) return;
    setTasks([...tasks, { text, done: false }]);
    setText('');
  };

  const toggle = (i) => {
    setTasks(tasks.map((t, j) => j === i ? { ...t, done: !t.done } : t));
  };

  return (
    <div className="app">
      <div className="sidebar">
        <div className="sidebar-header"><h2>{APP_NAME}</h2></div>
        <p>{tasks.filter(t => !t.done).length} open tasks</p>
      </div>
      <div className="main-content">
        <h1>Tasks</h1>
        <input type="text" value={text} onChange={e => setText(e.target.value)}
               onKeyDown={e => e.key === 'Enter' && addTask()} placeholder="What needs doing?" />
        <button onClick={addTask}>Add</button>
        <ul>
          {tasks.map((t, i) => (
            <li key={i} className={t.done ? 'done' : ''} onClick={() => toggle(i)}>{t.text}</li>
          ))}
        </ul>
      </div>
    </div>
  );
}

===== src/index.css =====
ul { list-style: none; margin-top: 24px; }
li { padding: 12px 0; border-bottom: 1px solid #334155; cursor: pointer; }
li.done { text-decoration: line-through; opacity: 0.5; }
`

const todoBackend = `# {APP_NAME} backend (FastAPI)
from fastapi import FastAPI, HTTPException
from pydantic import BaseModel

app = FastAPI(title="{APP_NAME}")
tasks = []

class Task(BaseModel):
    text: str
    done: bool = False

@app.get("/api/tasks")
def list_tasks():
    return tasks

@app.post("/api/tasks")
def create_task(task: Task):
    tasks.append(task)
    return task

@app.patch("/api/tasks/{index}")
def toggle_task(index: int):
    if index >= len(tasks):
        raise HTTPException(status_code=404, detail="task not found")
    tasks[index].done = not tasks[index].done
    return tasks[index]
`

const todoDatabase = `-- {APP_NAME} schema (Supabase / PostgreSQL)
create table tasks (
    id uuid primary key default gen_random_uuid(),
    text text not null,
    category text,
    done boolean not null default false,
    created_at timestamptz not null default now()
);

create index tasks_category_idx on tasks (category);
`

const todoDeploy = `# Deploying {APP_NAME}

1. Netlify: import the repo, build command "npm run build", publish directory "dist".
2. Render: new web service, start command "uvicorn main:app --host 0.0.0.0 --port $PORT".
3. Supabase: create a project and run the {APP_NAME} schema in the SQL editor.
4. Point VITE_API_URL at the Render URL and redeploy the frontend.
`

const urlShortenerFrontend = `===== src/App.jsx =====
function App() {
  const [longUrl, setLongUrl] = useState('');
  const [shortUrl, setShortUrl] = useState(null);

  const shorten = async () => {
    const res = await fetch('/api/shorten', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({ url: longUrl })
    });
    const data = await res.json();
    setShortUrl(data.short);
  };

  return (
    <div className="app">
      <div className="main-content">
        <h1>{APP_NAME}</h1>
        <input type="text" value={longUrl} onChange={e => setLongUrl(e.target.value)} placeholder="Paste a long URL" />
        <button onClick={shorten}>Shorten</button>
        {shortUrl && <div className="card"><a href={shortUrl}>{shortUrl}</a></div>}
      </div>
    </div>
  );
}

===== src/index.css =====
.card { background: #1e293b; border-radius: 8px; padding: 16px; margin-top: 24px; }
a { color: #3b82f6; }
`

const urlShortenerBackend = `# {APP_NAME} backend (FastAPI)
import secrets
from fastapi import FastAPI, HTTPException
from fastapi.responses import RedirectResponse
from pydantic import BaseModel

app = FastAPI(title="{APP_NAME}")
links = {}

class ShortenRequest(BaseModel):
    url: str

@app.post("/api/shorten")
def shorten(req: ShortenRequest):
    slug = secrets.token_urlsafe(4)
    links[slug] = req.url
    return {"slug": slug, "short": f"/r/{slug}"}

@app.get("/r/{slug}")
def resolve(slug: str):
    if slug not in links:
        raise HTTPException(status_code=404, detail="unknown link")
    return RedirectResponse(links[slug])
`

const urlShortenerDatabase = `-- {APP_NAME} schema (Supabase / PostgreSQL)
create table links (
    slug text primary key,
    target text not null,
    hits bigint not null default 0,
    created_at timestamptz not null default now()
);
`

const urlShortenerDeploy = `# Deploying {APP_NAME}

1. Netlify: build "npm run build", publish "dist".
2. Render: "uvicorn main:app --host 0.0.0.0 --port $PORT".
3. Supabase: run the {APP_NAME} schema; swap the in-memory dict for the links table.
`

const recipeFrontend = `===== src/App.jsx =====
function App() {
  const [recipes, setRecipes] = useState([]);
  const [query, setQuery] = useState('');

  useEffect(() => {
    fetch('/api/recipes').then(r => r.json()).then(setRecipes);
  }, []);

  const visible = recipes.filter(r => r.name.toLowerCase().includes(query.toLowerCase()));

  return (
    <div className="app">
      <div className="sidebar">
        <div className="sidebar-header"><h2>{APP_NAME}</h2></div>
        <input type="text" value={query} onChange={e => setQuery(e.target.value)} placeholder="Search recipes" />
      </div>
      <div className="main-content">
        <h1>Recipes</h1>
        {visible.map((r, i) => (
          <div className="card" key={i}>
            <h3>{r.name}</h3>
            <p>{r.ingredients.join(', ')}</p>
          </div>
        ))}
      </div>
    </div>
  );
}

===== src/index.css =====
.card { background: #1e293b; border-radius: 8px; padding: 16px; margin-top: 16px; }
h3 { margin-bottom: 8px; }
`

const recipeBackend = `# {APP_NAME} backend (FastAPI)
from fastapi import FastAPI
from pydantic import BaseModel

app = FastAPI(title="{APP_NAME}")
recipes = []

class Recipe(BaseModel):
    name: str
    ingredients: list[str]
    steps: list[str]

@app.get("/api/recipes")
def list_recipes():
    return recipes

@app.post("/api/recipes")
def create_recipe(recipe: Recipe):
    recipes.append(recipe)
    return recipe
`

const recipeDatabase = `-- {APP_NAME} schema (Supabase / PostgreSQL)
create table recipes (
    id uuid primary key default gen_random_uuid(),
    name text not null,
    ingredients text[] not null,
    steps text[] not null,
    created_at timestamptz not null default now()
);
`

const recipeDeploy = `# Deploying {APP_NAME}

1. Netlify serves the frontend: build "npm run build", publish "dist".
2. Render serves the backend: "uvicorn main:app --host 0.0.0.0 --port $PORT".
3. Supabase: apply the {APP_NAME} schema in the SQL editor.
`

const expenseFrontend = `===== src/App.jsx =====
function App() {
  const [expenses, setExpenses] = useState([]);
  const [label, setLabel] = useState('');
  const [amount, setAmount] = useState('');

  const add = () => {
    setExpenses([...expenses, { label, amount: parseFloat(amount) }]);
    setLabel('');
    setAmount('');
  };

  const total = expenses.reduce((sum, e) => sum + e.amount, 0);

  return (
    <div className="app">
      <div className="sidebar">
        <div className="sidebar-header"><h2>{APP_NAME}</h2></div>
        <p>Total: {total.toFixed(2)}</p>
      </div>
      <div className="main-content">
        <h1>Expenses</h1>
        <input type="text" value={label} onChange={e => setLabel(e.target.value)} placeholder="What for?" />
        <input type="text" value={amount} onChange={e => setAmount(e.target.value)} placeholder="Amount" />
        <button onClick={add}>Add expense</button>
        <ul>
          {expenses.map((e, i) => <li key={i}>{e.label}: {e.amount.toFixed(2)}</li>)}
        </ul>
      </div>
    </div>
  );
}

===== src/index.css =====
ul { list-style: none; margin-top: 24px; }
li { padding: 12px 0; border-bottom: 1px solid #334155; }
`

const expenseBackend = `# {APP_NAME} backend (FastAPI)
from fastapi import FastAPI
from pydantic import BaseModel

app = FastAPI(title="{APP_NAME}")
expenses = []

class Expense(BaseModel):
    label: str
    amount: float
    category: str = "general"

@app.get("/api/expenses")
def list_expenses():
    return {"items": expenses, "total": sum(e.amount for e in expenses)}

@app.post("/api/expenses")
def create_expense(expense: Expense):
    expenses.append(expense)
    return expense
`

const expenseDatabase = `-- {APP_NAME} schema (Supabase / PostgreSQL)
create table expenses (
    id uuid primary key default gen_random_uuid(),
    label text not null,
    amount numeric(12,2) not null,
    category text not null default 'general',
    spent_at timestamptz not null default now()
);

create index expenses_category_idx on expenses (category);
`

const expenseDeploy = `# Deploying {APP_NAME}

1. Netlify: connect the repo, build "npm run build", publish "dist".
2. Render: "uvicorn main:app --host 0.0.0.0 --port $PORT".
3. Supabase: run the {APP_NAME} schema and enable row level security if multi-user.
`

const notesFrontend = `===== src/App.jsx =====
function App() {
  const [notes, setNotes] = useState([]);
  const [draft, setDraft] = useState('');

  const save = () => {
    if (!draft.trim()) return;
    setNotes([{ body: draft, at: new Date().toLocaleString() }, ...notes]);
    setDraft('');
  };

  return (
    <div className="app">
      <div className="sidebar">
        <div className="sidebar-header"><h2>{APP_NAME}</h2></div>
        <p>{notes.length} notes</p>
      </div>
      <div className="main-content">
        <h1>Notes</h1>
        <textarea value={draft} onChange={e => setDraft(e.target.value)} placeholder="Write in markdown..." rows={6} />
        <button onClick={save}>Save note</button>
        {notes.map((n, i) => (
          <div className="card" key={i}>
            <small>{n.at}</small>
            <p>{n.body}</p>
          </div>
        ))}
      </div>
    </div>
  );
}

===== src/index.css =====
textarea { width: 100%; background: #1e293b; border: 1px solid #334155; border-radius: 8px; color: #e2e8f0; padding: 12px; }
.card { background: #1e293b; border-radius: 8px; padding: 16px; margin-top: 16px; }
`

const notesBackend = `# {APP_NAME} backend (FastAPI)
from fastapi import FastAPI
from pydantic import BaseModel

app = FastAPI(title="{APP_NAME}")
notes = []

class Note(BaseModel):
    body: str

@app.get("/api/notes")
def list_notes():
    return notes

@app.post("/api/notes")
def create_note(note: Note):
    notes.insert(0, note)
    return note
`

const notesDatabase = `-- {APP_NAME} schema (Supabase / PostgreSQL)
create table notes (
    id uuid primary key default gen_random_uuid(),
    body text not null,
    created_at timestamptz not null default now(),
    updated_at timestamptz not null default now()
);
`

const notesDeploy = `# Deploying {APP_NAME}

1. Netlify: build "npm run build", publish "dist".
2. Render: "uvicorn main:app --host 0.0.0.0 --port $PORT".
3. Supabase: apply the {APP_NAME} schema; notes sync replaces local state.
`

const weatherFrontend = `===== src/App.jsx =====
function App() {
  const [city, setCity] = useState('');
  const [report, setReport] = useState(null);

  const lookup = async () => {
    const res = await fetch('/api/weather?city=' + encodeURIComponent(city));
    setReport(await res.json());
  };

  return (
    <div className="app">
      <div className="main-content">
        <h1>{APP_NAME}</h1>
        <input type="text" value={city} onChange={e => setCity(e.target.value)} placeholder="City name" />
        <button onClick={lookup}>Forecast</button>
        {report && (
          <div className="card">
            <h3>{report.city}</h3>
            <p>{report.temperature} degrees, {report.conditions}</p>
          </div>
        )}
      </div>
    </div>
  );
}

===== src/index.css =====
.card { background: #1e293b; border-radius: 8px; padding: 16px; margin-top: 24px; }
`

const weatherBackend = `# {APP_NAME} backend (FastAPI)
import os
import httpx
from fastapi import FastAPI

app = FastAPI(title="{APP_NAME}")
API_KEY = os.getenv("OPENWEATHER_API_KEY")

@app.get("/api/weather")
async def weather(city: str):
    async with httpx.AsyncClient() as client:
        resp = await client.get(
            "https://api.openweathermap.org/data/2.5/weather",
            params={"q": city, "appid": API_KEY, "units": "metric"},
        )
    data = resp.json()
    return {
        "city": data["name"],
        "temperature": data["main"]["temp"],
        "conditions": data["weather"][0]["description"],
    }
`

const weatherDatabase = `-- {APP_NAME} schema (Supabase / PostgreSQL)
create table lookups (
    id bigserial primary key,
    city text not null,
    temperature numeric(5,2),
    conditions text,
    looked_up_at timestamptz not null default now()
);
`

const weatherDeploy = `# Deploying {APP_NAME}

1. Netlify: build "npm run build", publish "dist".
2. Render: "uvicorn main:app --host 0.0.0.0 --port $PORT"; set OPENWEATHER_API_KEY.
3. Supabase: run the {APP_NAME} schema if you want lookup history.
`

const quizFrontend = `===== src/App.jsx =====
function App() {
  const [questions, setQuestions] = useState([]);
  const [current, setCurrent] = useState(0);
  const [score, setScore] = useState(0);

  useEffect(() => {
    fetch('/api/questions').then(r => r.json()).then(setQuestions);
  }, []);

  const answer = (choice) => {
    if (questions[current] && choice === questions[current].answer) {
      setScore(score + 1);
    }
    setCurrent(current + 1);
  };

  if (current >= questions.length && questions.length > 0) {
    return <div className="app"><div className="main-content"><h1>{APP_NAME}</h1><p>Score: {score} / {questions.length}</p></div></div>;
  }

  const q = questions[current];
  return (
    <div className="app">
      <div className="main-content">
        <h1>{APP_NAME}</h1>
        {q && (
          <div className="card">
            <h3>{q.prompt}</h3>
            {q.choices.map((c, i) => <button key={i} onClick={() => answer(c)}>{c}</button>)}
          </div>
        )}
      </div>
    </div>
  );
}

===== src/index.css =====
.card { background: #1e293b; border-radius: 8px; padding: 16px; margin-top: 24px; }
.card button { display: block; margin-top: 8px; width: 100%; }
`

const quizBackend = `# {APP_NAME} backend (FastAPI)
from fastapi import FastAPI
from pydantic import BaseModel

app = FastAPI(title="{APP_NAME}")

class Question(BaseModel):
    prompt: str
    choices: list[str]
    answer: str

questions = [
    Question(prompt="What does HTTP stand for?",
             choices=["HyperText Transfer Protocol", "High Throughput Protocol"],
             answer="HyperText Transfer Protocol"),
]

@app.get("/api/questions")
def list_questions():
    return questions

@app.post("/api/questions")
def add_question(q: Question):
    questions.append(q)
    return q
`

const quizDatabase = `-- {APP_NAME} schema (Supabase / PostgreSQL)
create table questions (
    id uuid primary key default gen_random_uuid(),
    prompt text not null,
    choices text[] not null,
    answer text not null
);

create table attempts (
    id bigserial primary key,
    score int not null,
    total int not null,
    taken_at timestamptz not null default now()
);
`

const quizDeploy = `# Deploying {APP_NAME}

1. Netlify: build "npm run build", publish "dist".
2. Render: "uvicorn main:app --host 0.0.0.0 --port $PORT".
3. Supabase: run the {APP_NAME} schema and seed a few questions.
`
