package main

// exampleScenario is the starter file emitted by the example command.
const exampleScenario = `# rothplan scenario file
scenario:
  name: "Sample household"
  filing_status: "married filing jointly"
  state: PA
  retirement_age: 66
  mortality_age: 90
  medicare_age: 65
  tax_year: 2025
  current_year: 2025
  pre_retirement_income: 150000

primary:
  name: "Alex"
  birthdate: "1960-03-15"

spouse:
  name: "Jordan"
  birthdate: "1962-07-01"

assets:
  - id: ira-alex
    name: "Alex Rollover IRA"
    category: qualified
    owner: primary
    balance: 800000
    growth_rate: 0.06
    max_to_convert: 400000

  - id: ira-jordan
    name: "Jordan 401(k)"
    category: qualified
    owner: spouse
    balance: 350000
    growth_rate: 0.06

  - id: brokerage
    name: "Joint brokerage"
    category: non_qualified
    owner: primary
    balance: 250000
    growth_rate: 0.05

  - id: ss-alex
    category: social_security
    owner: primary
    monthly_income: 2800
    withdrawal_start_age: 67

  - id: ss-jordan
    category: social_security
    owner: spouse
    monthly_income: 1900
    withdrawal_start_age: 67

conversion_plan:
  start_year: 2026
  duration: 5
  annual_cap: 100000
  roth_growth_rate: 0.06
  roth_withdrawal_amount: 30000
  roth_withdrawal_start_year: 2035
`
